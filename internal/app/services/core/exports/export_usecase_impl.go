package exports

import (
	"bytes"
	"context"
	"sync"
	"time"

	"kemandirian-service/internal/app/config"
	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/dto/responses"
	"kemandirian-service/internal/pkg/exceptions"
	"kemandirian-service/internal/pkg/instruments"
	"kemandirian-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type exportUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	Storage              contracts.ObjectStorage
	Queue                contracts.ExportQueue
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

var (
	exportUsecaseInstance contracts.ExportUsecase
	onceExportUsecase     sync.Once
)

func NewExportUsecase(
	assessmentRepository contracts.AssessmentRepository,
	objectStorage contracts.ObjectStorage,
	exportQueue contracts.ExportQueue,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ExportUsecase {
	onceExportUsecase.Do(func() {
		exportUsecaseInstance = &exportUsecase{
			AssessmentRepository: assessmentRepository,
			Storage:              objectStorage,
			Queue:                exportQueue,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
	})
	return exportUsecaseInstance
}

func (uc *exportUsecase) BuildExportDocument(ctx context.Context) (*models.ExportDocument, error) {
	records, err := uc.AssessmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, exceptions.ErrNothingToExport()
	}

	return &models.ExportDocument{
		Version:     constvars.ExportFormatVersion,
		ExportDate:  time.Now().UTC(),
		Assessments: records,
		Count:       len(records),
	}, nil
}

func (uc *exportUsecase) UploadExportDocument(ctx context.Context) (*responses.ExportUpload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	document, err := uc.BuildExportDocument(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(document)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := utils.GenerateExportDocumentFilename(time.Now())
	err = uc.Storage.PutObject(ctx, objectName, constvars.MIMEApplicationJSON, bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return nil, err
	}

	uc.Log.Info("export document uploaded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingRecordCountKey, document.Count),
	)

	// The link is a convenience; a presign failure does not undo the upload.
	downloadURL, err := uc.Storage.PresignedGetURL(ctx, objectName, constvars.ExportDownloadURLExpiry)
	if err != nil {
		uc.Log.Warn("presigning export download url failed",
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		downloadURL = ""
	}

	return &responses.ExportUpload{
		ObjectName:  objectName,
		Size:        int64(len(payload)),
		DownloadURL: downloadURL,
	}, nil
}

// ImportAssessments installs an exported document. Replace mode swaps the
// whole store and reports the new total; merge mode appends only records
// whose ids are not present yet and reports how many were actually added.
func (uc *exportUsecase) ImportAssessments(ctx context.Context, payload []byte, mode string) (*responses.ImportSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ExportUsecase.ImportAssessments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingImportModeKey, mode),
	)

	incoming, err := parseImportPayload(payload)
	if err != nil {
		return nil, err
	}

	policy := instruments.CombinedPolicy(uc.InternalConfig.App.CombinedPolicy)
	for idx := range incoming {
		incoming[idx].Rederive(policy)
	}

	if mode == constvars.ImportModeReplace {
		if err := uc.AssessmentRepository.ReplaceAll(ctx, incoming); err != nil {
			return nil, err
		}
		return &responses.ImportSummary{
			Mode:     mode,
			Received: len(incoming),
			Inserted: len(incoming),
			Total:    len(incoming),
		}, nil
	}

	existing, err := uc.AssessmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	existingIDs := make(map[string]bool, len(existing))
	for _, record := range existing {
		existingIDs[record.ID] = true
	}

	newRecords := []models.AssessmentRecord{}
	for _, record := range incoming {
		if !existingIDs[record.ID] {
			newRecords = append(newRecords, record)
		}
	}

	if err := uc.AssessmentRepository.BulkInsert(ctx, newRecords); err != nil {
		return nil, err
	}

	uc.Log.Info("assessments merged from import document",
		zap.Int(constvars.LoggingInsertedCountKey, len(newRecords)),
		zap.Int(constvars.LoggingRecordCountKey, len(incoming)),
	)

	return &responses.ImportSummary{
		Mode:     mode,
		Received: len(incoming),
		Inserted: len(newRecords),
		Total:    len(existing) + len(newRecords),
	}, nil
}

func (uc *exportUsecase) EnqueueSpreadsheetExport(ctx context.Context) (*responses.SpreadsheetJob, error) {
	job := &models.SpreadsheetJob{
		JobID:      utils.GenerateRecordID(),
		TenantID:   uc.InternalConfig.App.TenantID,
		ObjectName: utils.GenerateExportSpreadsheetFilename(time.Now()),
		EnqueuedAt: time.Now(),
	}
	if err := uc.Queue.Enqueue(ctx, job); err != nil {
		return nil, err
	}
	return &responses.SpreadsheetJob{
		JobID:      job.JobID,
		ObjectName: job.ObjectName,
		Status:     "queued",
	}, nil
}

func (uc *exportUsecase) BuildSpreadsheet(ctx context.Context) ([]byte, error) {
	records, err := uc.AssessmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, exceptions.ErrNothingToExport()
	}
	return buildSpreadsheet(records)
}
