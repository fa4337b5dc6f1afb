package exports

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"kemandirian-service/internal/app/config"
	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/instruments"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Insert(ctx context.Context, record *models.AssessmentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAssessmentRepository) FindAll(ctx context.Context) ([]models.AssessmentRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssessmentRecord), args.Error(1)
}

func (m *MockAssessmentRepository) FindByID(ctx context.Context, recordID string) (*models.AssessmentRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentRecord), args.Error(1)
}

func (m *MockAssessmentRepository) DeleteByID(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

func (m *MockAssessmentRepository) ReplaceAll(ctx context.Context, records []models.AssessmentRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockAssessmentRepository) BulkInsert(ctx context.Context, records []models.AssessmentRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) PutObject(ctx context.Context, objectName, contentType string, payload io.Reader, size int64) error {
	args := m.Called(ctx, objectName, contentType, payload, size)
	return args.Error(0)
}

func (m *MockObjectStorage) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}

type MockExportQueue struct {
	mock.Mock
}

func (m *MockExportQueue) Enqueue(ctx context.Context, job *models.SpreadsheetJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockExportQueue) FetchN(ctx context.Context, max int) ([]contracts.QueuedSpreadsheetJob, error) {
	args := m.Called(ctx, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.QueuedSpreadsheetJob), args.Error(1)
}

func (m *MockExportQueue) Ack(deliveryTag uint64) error {
	args := m.Called(deliveryTag)
	return args.Error(0)
}

func newTestExportUsecase(repo *MockAssessmentRepository, storage *MockObjectStorage, queue *MockExportQueue) *exportUsecase {
	return &exportUsecase{
		AssessmentRepository: repo,
		Storage:              storage,
		Queue:                queue,
		InternalConfig: &config.InternalConfig{
			App: config.App{
				TenantID:       "tenant_test",
				CombinedPolicy: "percentage",
			},
		},
		Log: zap.NewNop(),
	}
}

func exportFixture() []models.AssessmentRecord {
	aksDef, _ := instruments.Lookup(instruments.IDAKS, 2)
	aiksDef, _ := instruments.Lookup(instruments.IDAIKS, 1)

	aksResult := instruments.Score(aksDef, map[string]int{
		"mandi": 2, "berpakaian": 2, "toileting": 2, "berpindah": 2, "kontinensia": 2, "makan": 2,
	})
	aiksResult := instruments.Score(aiksDef, map[string]int{
		"telepon": 1, "belanja": 1, "persiapanMakanan": 1, "rumahTangga": 1,
		"laundry": 1, "transportasi": 1, "obat": 1, "keuangan": 1,
	})

	records := []models.AssessmentRecord{
		{
			ID:            "rec-1",
			SchemaVersion: models.CurrentSchemaVersion,
			Timestamp:     time.Date(2025, time.June, 3, 14, 0, 0, 0, time.UTC),
			Demographic:   models.Demographic{Nama: "Ibu Siti Aminah", Usia: "72", JenisKelamin: "perempuan"},
			Results:       []instruments.Result{aksResult, aiksResult},
		},
		{
			ID:            "rec-2",
			SchemaVersion: models.CurrentSchemaVersion,
			Timestamp:     time.Date(2025, time.June, 4, 9, 30, 0, 0, time.UTC),
			Demographic:   models.Demographic{Nama: "Pak Budi Santoso", Usia: "80"},
			Results:       []instruments.Result{aksResult},
		},
	}
	for idx := range records {
		records[idx].Rederive(instruments.PolicyPercentage)
	}
	return records
}

func marshalExportDocument(t *testing.T, records []models.AssessmentRecord) []byte {
	t.Helper()
	payload, err := json.Marshal(&models.ExportDocument{
		Version:     constvars.ExportFormatVersion,
		ExportDate:  time.Now().UTC(),
		Assessments: records,
		Count:       len(records),
	})
	assert.NoError(t, err)
	return payload
}

func TestBuildExportDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store has nothing to export", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		repo.On("FindAll", mock.Anything).Return([]models.AssessmentRecord{}, nil)
		usecase := newTestExportUsecase(repo, new(MockObjectStorage), new(MockExportQueue))

		_, err := usecase.BuildExportDocument(ctx)

		assert.Error(t, err)
	})

	t.Run("document carries version and count", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		repo.On("FindAll", mock.Anything).Return(exportFixture(), nil)
		usecase := newTestExportUsecase(repo, new(MockObjectStorage), new(MockExportQueue))

		document, err := usecase.BuildExportDocument(ctx)

		assert.NoError(t, err)
		assert.Equal(t, constvars.ExportFormatVersion, document.Version)
		assert.Equal(t, 2, document.Count)
		assert.Len(t, document.Assessments, 2)
	})
}

func TestImportAssessments(t *testing.T) {
	ctx := context.Background()

	t.Run("replace round-trips the exported document", func(t *testing.T) {
		records := exportFixture()
		payload := marshalExportDocument(t, records)

		repo := new(MockAssessmentRepository)
		repo.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(incoming []models.AssessmentRecord) bool {
			if len(incoming) != len(records) {
				return false
			}
			for idx := range incoming {
				if incoming[idx].ID != records[idx].ID {
					return false
				}
				if incoming[idx].Results[0].TotalScore != records[idx].Results[0].TotalScore {
					return false
				}
			}
			return true
		})).Return(nil)
		usecase := newTestExportUsecase(repo, new(MockObjectStorage), new(MockExportQueue))

		summary, err := usecase.ImportAssessments(ctx, payload, constvars.ImportModeReplace)

		assert.NoError(t, err)
		assert.Equal(t, 2, summary.Received)
		assert.Equal(t, 2, summary.Inserted)
		assert.Equal(t, 2, summary.Total)
		repo.AssertExpectations(t)
	})

	t.Run("merge only inserts records with new ids", func(t *testing.T) {
		records := exportFixture()
		existing := records[:1]

		incoming := append([]models.AssessmentRecord{}, records...)
		incoming[1].ID = "rec-3"
		payload := marshalExportDocument(t, incoming)

		repo := new(MockAssessmentRepository)
		repo.On("FindAll", mock.Anything).Return(existing, nil)
		repo.On("BulkInsert", mock.Anything, mock.MatchedBy(func(added []models.AssessmentRecord) bool {
			return len(added) == 1 && added[0].ID == "rec-3"
		})).Return(nil)
		usecase := newTestExportUsecase(repo, new(MockObjectStorage), new(MockExportQueue))

		summary, err := usecase.ImportAssessments(ctx, payload, constvars.ImportModeMerge)

		assert.NoError(t, err)
		assert.Equal(t, 2, summary.Received)
		assert.Equal(t, 1, summary.Inserted)
		assert.Equal(t, 2, summary.Total)
		repo.AssertExpectations(t)
	})

	t.Run("merging the same document twice inserts nothing the second time", func(t *testing.T) {
		records := exportFixture()
		payload := marshalExportDocument(t, records)

		repo := new(MockAssessmentRepository)
		repo.On("FindAll", mock.Anything).Return(records, nil)
		repo.On("BulkInsert", mock.Anything, mock.MatchedBy(func(added []models.AssessmentRecord) bool {
			return len(added) == 0
		})).Return(nil)
		usecase := newTestExportUsecase(repo, new(MockObjectStorage), new(MockExportQueue))

		summary, err := usecase.ImportAssessments(ctx, payload, constvars.ImportModeMerge)

		assert.NoError(t, err)
		assert.Equal(t, 2, summary.Received)
		assert.Equal(t, 0, summary.Inserted)
		assert.Equal(t, 2, summary.Total)
		repo.AssertExpectations(t)
	})

	t.Run("import recomputes classifications", func(t *testing.T) {
		records := exportFixture()
		// drop the derived block entirely; the importer must rebuild it
		for idx := range records {
			records[idx].Derived = models.Derived{}
		}
		payload := marshalExportDocument(t, records)

		var replaced []models.AssessmentRecord
		repo := new(MockAssessmentRepository)
		repo.On("ReplaceAll", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			replaced = args.Get(1).([]models.AssessmentRecord)
		}).Return(nil)
		usecase := newTestExportUsecase(repo, new(MockObjectStorage), new(MockExportQueue))

		_, err := usecase.ImportAssessments(ctx, payload, constvars.ImportModeReplace)

		assert.NoError(t, err)
		assert.Equal(t, instruments.TierMandiri.Code, replaced[0].Derived.Tiers[instruments.IDAKS].Code)
		assert.NotNil(t, replaced[0].Derived.Combined)
	})

	t.Run("malformed document aborts before any write", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		usecase := newTestExportUsecase(repo, new(MockObjectStorage), new(MockExportQueue))

		for _, payload := range []string{
			`{"assessments": []}`,
			`{"version": "1.0"}`,
			`{"version": "1.0", "assessments": [{"timestamp": "2025-06-03T14:00:00Z"}]}`,
			`{"version": "1.0", "assessments": [{"id": "rec-1", "timestamp": "not-a-date", "demographic": {"nama": "Siti"}, "results": []}]}`,
			`{"version": "1.0", "assessments": [{"id": "rec-1", "timestamp": "2025-06-03T14:00:00Z", "demographic": {"nama": "Siti"}}]}`,
		} {
			_, err := usecase.ImportAssessments(ctx, []byte(payload), constvars.ImportModeReplace)
			assert.Error(t, err, payload)
		}

		repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything)
	})

	t.Run("legacy document is normalized on import", func(t *testing.T) {
		payload := []byte(`{
			"version": "1.0",
			"assessments": [{
				"id": "legacy-1",
				"timestamp": "2024-11-20T08:00:00Z",
				"demographic": {"nama": "Ibu Rahma", "usia": "68"},
				"aksScores": {"mandi": 2, "berpakaian": 2, "toileting": 2, "berpindah": 2, "kontinensia": 2, "makan": 2}
			}]
		}`)

		var replaced []models.AssessmentRecord
		repo := new(MockAssessmentRepository)
		repo.On("ReplaceAll", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			replaced = args.Get(1).([]models.AssessmentRecord)
		}).Return(nil)
		usecase := newTestExportUsecase(repo, new(MockObjectStorage), new(MockExportQueue))

		summary, err := usecase.ImportAssessments(ctx, payload, constvars.ImportModeReplace)

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Inserted)
		assert.Equal(t, models.CurrentSchemaVersion, replaced[0].SchemaVersion)
		assert.Equal(t, 12, replaced[0].Results[0].TotalScore)
		assert.True(t, replaced[0].Results[0].Complete)
	})
}

func TestUploadExportDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads and links a presigned download", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		repo.On("FindAll", mock.Anything).Return(exportFixture(), nil)

		storage := new(MockObjectStorage)
		storage.On("PutObject", mock.Anything, mock.AnythingOfType("string"), constvars.MIMEApplicationJSON, mock.Anything, mock.AnythingOfType("int64")).Return(nil)
		storage.On("PresignedGetURL", mock.Anything, mock.AnythingOfType("string"), constvars.ExportDownloadURLExpiry).
			Return("https://storage.local/assessments-backup.json?sig=abc", nil)

		usecase := newTestExportUsecase(repo, storage, new(MockExportQueue))

		upload, err := usecase.UploadExportDocument(ctx)

		assert.NoError(t, err)
		assert.NotEmpty(t, upload.ObjectName)
		assert.Greater(t, upload.Size, int64(0))
		assert.Equal(t, "https://storage.local/assessments-backup.json?sig=abc", upload.DownloadURL)
		storage.AssertExpectations(t)
	})

	t.Run("presign failure keeps the upload result", func(t *testing.T) {
		repo := new(MockAssessmentRepository)
		repo.On("FindAll", mock.Anything).Return(exportFixture(), nil)

		storage := new(MockObjectStorage)
		storage.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		storage.On("PresignedGetURL", mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError)

		usecase := newTestExportUsecase(repo, storage, new(MockExportQueue))

		upload, err := usecase.UploadExportDocument(ctx)

		assert.NoError(t, err)
		assert.NotEmpty(t, upload.ObjectName)
		assert.Empty(t, upload.DownloadURL)
	})
}

func TestEnqueueSpreadsheetExport(t *testing.T) {
	ctx := context.Background()

	queue := new(MockExportQueue)
	queue.On("Enqueue", mock.Anything, mock.AnythingOfType("*models.SpreadsheetJob")).Return(nil)

	usecase := newTestExportUsecase(new(MockAssessmentRepository), new(MockObjectStorage), queue)

	job, err := usecase.EnqueueSpreadsheetExport(ctx)

	assert.NoError(t, err)
	assert.NotEmpty(t, job.JobID)
	assert.NotEmpty(t, job.ObjectName)
	assert.Equal(t, "queued", job.Status)
	queue.AssertExpectations(t)
}

func TestBuildSpreadsheet(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAssessmentRepository)
	repo.On("FindAll", mock.Anything).Return(exportFixture(), nil)
	usecase := newTestExportUsecase(repo, new(MockObjectStorage), new(MockExportQueue))

	payload, err := usecase.BuildSpreadsheet(ctx)
	assert.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(payload))
	assert.NoError(t, err)
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	assert.Contains(t, sheets, "Ringkasan")
	assert.Contains(t, sheets, "Demo-1")
	assert.Contains(t, sheets, "Demo-2")
	assert.Contains(t, sheets, "AKS-1")
	assert.Contains(t, sheets, "AIKS-1")

	nama, err := workbook.GetCellValue("Ringkasan", "C4")
	assert.NoError(t, err)
	assert.Equal(t, "Ibu Siti Aminah", nama)

	jenisKelamin, err := workbook.GetCellValue("Demo-1", "B6")
	assert.NoError(t, err)
	assert.Equal(t, "perempuan", jenisKelamin)

	// unset demographic fields render as a dash
	jenisKelamin, err = workbook.GetCellValue("Demo-2", "B6")
	assert.NoError(t, err)
	assert.Equal(t, "-", jenisKelamin)
}
