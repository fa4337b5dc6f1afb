package contracts

import (
	"context"
	"io"
	"time"

	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/dto/responses"
)

type ExportUsecase interface {
	BuildExportDocument(ctx context.Context) (*models.ExportDocument, error)
	UploadExportDocument(ctx context.Context) (*responses.ExportUpload, error)
	ImportAssessments(ctx context.Context, payload []byte, mode string) (*responses.ImportSummary, error)
	EnqueueSpreadsheetExport(ctx context.Context) (*responses.SpreadsheetJob, error)
	BuildSpreadsheet(ctx context.Context) ([]byte, error)
}

// ObjectStorage is the export sink. Objects are written once and fetched by
// name; listing and lifecycle stay with the storage backend.
type ObjectStorage interface {
	PutObject(ctx context.Context, objectName, contentType string, payload io.Reader, size int64) error
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// QueuedSpreadsheetJob pairs a fetched job with its broker delivery tag so
// the worker can acknowledge it after the upload lands.
type QueuedSpreadsheetJob struct {
	DeliveryTag uint64
	Job         models.SpreadsheetJob
}

// ExportQueue hands spreadsheet jobs to the background worker with
// at-least-once delivery.
type ExportQueue interface {
	Enqueue(ctx context.Context, job *models.SpreadsheetJob) error
	FetchN(ctx context.Context, max int) ([]QueuedSpreadsheetJob, error)
	Ack(deliveryTag uint64) error
}
