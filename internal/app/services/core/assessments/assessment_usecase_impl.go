package assessments

import (
	"context"
	"strings"
	"sync"
	"time"

	"kemandirian-service/internal/app/config"
	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/dto/requests"
	"kemandirian-service/internal/pkg/exceptions"
	"kemandirian-service/internal/pkg/instruments"
	"kemandirian-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	LocalRepository  contracts.AssessmentRepository
	RemoteRepository contracts.AssessmentRepository
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	assessmentUsecaseInstance contracts.AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

func NewAssessmentUsecase(
	localRepository contracts.AssessmentRepository,
	remoteRepository contracts.AssessmentRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			LocalRepository:  localRepository,
			RemoteRepository: remoteRepository,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) CreateAssessment(ctx context.Context, request *requests.CreateAssessment) (*models.AssessmentRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("AssessmentUsecase.CreateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Demographic.Nama == "" || request.Demographic.Usia == "" {
		return nil, exceptions.ErrDemographicIncomplete(nil)
	}

	record := &models.AssessmentRecord{
		ID:            utils.GenerateRecordID(),
		TenantID:      uc.InternalConfig.App.TenantID,
		SchemaVersion: models.CurrentSchemaVersion,
		Timestamp:     time.Now(),
		Demographic: models.Demographic{
			Nama:              request.Demographic.Nama,
			Usia:              request.Demographic.Usia,
			JenisKelamin:      request.Demographic.JenisKelamin,
			Alamat:            request.Demographic.Alamat,
			NoTelepon:         request.Demographic.NoTelepon,
			Pendidikan:        request.Demographic.Pendidikan,
			Pekerjaan:         request.Demographic.Pekerjaan,
			Agama:             request.Demographic.Agama,
			StatusPernikahan:  request.Demographic.StatusPernikahan,
			PenyakitKronis:    request.Demographic.PenyakitKronis,
			PenyakitLainnya:   request.Demographic.PenyakitLainnya,
			AsuransiKesehatan: request.Demographic.AsuransiKesehatan,
		},
	}
	if request.Timestamp != "" {
		if parsed, err := time.Parse(time.RFC3339, request.Timestamp); err == nil {
			record.Timestamp = parsed
		}
	}

	for _, entry := range request.Results {
		def, ok := instruments.Lookup(entry.InstrumentID, entry.Version)
		if !ok {
			return nil, exceptions.ErrUnknownInstrument(entry.InstrumentID)
		}
		result := instruments.Score(def, entry.Responses)
		if !result.Complete {
			return nil, exceptions.ErrInstrumentIncomplete(def.Key())
		}
		record.Results = append(record.Results, result)
	}

	record.Rederive(instruments.CombinedPolicy(uc.InternalConfig.App.CombinedPolicy))
	record.SetCreatedAtUpdatedAt()

	if err := uc.LocalRepository.Insert(ctx, record); err != nil {
		return nil, err
	}

	// Remote sync is best-effort; the device copy is authoritative and the
	// migration op reconciles later.
	if err := uc.RemoteRepository.Insert(ctx, record); err != nil {
		uc.Log.Warn("remote sync failed on create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, record.ID),
			zap.Error(err),
		)
	}

	return record, nil
}

func (uc *assessmentUsecase) FindAssessments(ctx context.Context, filter *requests.AssessmentFilter) ([]models.AssessmentRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("AssessmentUsecase.FindAssessments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	records, err := uc.LocalRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return records, nil
	}
	return filterRecords(records, filter, time.Now()), nil
}

func (uc *assessmentUsecase) FindAssessmentByID(ctx context.Context, recordID string) (*models.AssessmentRecord, error) {
	record, err := uc.LocalRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrAssessmentNotFound(recordID)
	}
	return record, nil
}

func (uc *assessmentUsecase) DeleteAssessmentByID(ctx context.Context, recordID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("AssessmentUsecase.DeleteAssessmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	if err := uc.LocalRepository.DeleteByID(ctx, recordID); err != nil {
		return err
	}

	if err := uc.RemoteRepository.DeleteByID(ctx, recordID); err != nil {
		uc.Log.Warn("remote delete failed",
			zap.String(constvars.LoggingRecordIDKey, recordID),
			zap.Error(err),
		)
	}
	return nil
}

// MigrateLocalToRemote pushes device records the remote store does not have
// yet. Running it twice in a row migrates nothing the second time.
func (uc *assessmentUsecase) MigrateLocalToRemote(ctx context.Context) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("AssessmentUsecase.MigrateLocalToRemote called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	localRecords, err := uc.LocalRepository.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	remoteRecords, err := uc.RemoteRepository.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	remoteIDs := make(map[string]bool, len(remoteRecords))
	for _, record := range remoteRecords {
		remoteIDs[record.ID] = true
	}

	missing := []models.AssessmentRecord{}
	for _, record := range localRecords {
		if !remoteIDs[record.ID] {
			missing = append(missing, record)
		}
	}

	if err := uc.RemoteRepository.BulkInsert(ctx, missing); err != nil {
		return 0, err
	}

	uc.Log.Info("local records migrated to remote store",
		zap.Int(constvars.LoggingInsertedCountKey, len(missing)),
		zap.Int(constvars.LoggingRecordCountKey, len(localRecords)),
	)
	return len(missing), nil
}

// filterRecords applies the list filters in-memory, preserving order.
func filterRecords(records []models.AssessmentRecord, filter *requests.AssessmentFilter, now time.Time) []models.AssessmentRecord {
	filtered := make([]models.AssessmentRecord, 0, len(records))
	for _, record := range records {
		if filter.Nama != "" && !strings.Contains(strings.ToLower(record.Demographic.Nama), strings.ToLower(filter.Nama)) {
			continue
		}
		if filter.Tier != "" && !recordMatchesTier(&record, filter.Tier) {
			continue
		}
		if filter.PJP != nil && record.Derived.IsPJP != *filter.PJP {
			continue
		}
		if filter.CurrentMonth {
			if record.Timestamp.Year() != now.Year() || record.Timestamp.Month() != now.Month() {
				continue
			}
		}
		filtered = append(filtered, record)
	}
	return filtered
}

func recordMatchesTier(record *models.AssessmentRecord, tierCode string) bool {
	if record.Derived.Combined != nil && record.Derived.Combined.Code == tierCode {
		return true
	}
	for _, tier := range record.Derived.Tiers {
		if tier.Code == tierCode {
			return true
		}
	}
	return false
}
