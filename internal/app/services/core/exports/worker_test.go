package exports

import (
	"context"
	"testing"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/dto/responses"
	"kemandirian-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockExportUsecase struct {
	mock.Mock
}

func (m *MockExportUsecase) BuildExportDocument(ctx context.Context) (*models.ExportDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExportDocument), args.Error(1)
}

func (m *MockExportUsecase) UploadExportDocument(ctx context.Context) (*responses.ExportUpload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ExportUpload), args.Error(1)
}

func (m *MockExportUsecase) ImportAssessments(ctx context.Context, payload []byte, mode string) (*responses.ImportSummary, error) {
	args := m.Called(ctx, payload, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ImportSummary), args.Error(1)
}

func (m *MockExportUsecase) EnqueueSpreadsheetExport(ctx context.Context) (*responses.SpreadsheetJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SpreadsheetJob), args.Error(1)
}

func (m *MockExportUsecase) BuildSpreadsheet(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func queuedJob(tag uint64) contracts.QueuedSpreadsheetJob {
	return contracts.QueuedSpreadsheetJob{
		DeliveryTag: tag,
		Job: models.SpreadsheetJob{
			JobID:      "job-1",
			ObjectName: "rekap.xlsx",
		},
	}
}

func TestWorkerProcessJob(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("acks only after the artifact is uploaded", func(t *testing.T) {
		usecase := new(MockExportUsecase)
		storage := new(MockObjectStorage)
		queue := new(MockExportQueue)

		usecase.On("BuildSpreadsheet", mock.Anything).Return([]byte("xlsx-bytes"), nil)
		storage.On("PutObject", mock.Anything, "rekap.xlsx", constvars.MIMEApplicationXLSX, mock.Anything, int64(10)).Return(nil)
		queue.On("Ack", uint64(7)).Return(nil)

		worker := NewWorker(logger, queue, usecase, storage, 1)
		worker.processJob(ctx, queuedJob(7))

		queue.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("upload failure keeps the job queued", func(t *testing.T) {
		usecase := new(MockExportUsecase)
		storage := new(MockObjectStorage)
		queue := new(MockExportQueue)

		usecase.On("BuildSpreadsheet", mock.Anything).Return([]byte("xlsx-bytes"), nil)
		storage.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		worker := NewWorker(logger, queue, usecase, storage, 1)
		worker.processJob(ctx, queuedJob(8))

		queue.AssertNotCalled(t, "Ack", mock.Anything)
	})

	t.Run("emptied store drops the job", func(t *testing.T) {
		usecase := new(MockExportUsecase)
		storage := new(MockObjectStorage)
		queue := new(MockExportQueue)

		usecase.On("BuildSpreadsheet", mock.Anything).Return(nil, exceptions.ErrNothingToExport())
		queue.On("Ack", uint64(9)).Return(nil)

		worker := NewWorker(logger, queue, usecase, storage, 1)
		worker.processJob(ctx, queuedJob(9))

		queue.AssertExpectations(t)
		storage.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("transient build failure leaves the job queued", func(t *testing.T) {
		usecase := new(MockExportUsecase)
		storage := new(MockObjectStorage)
		queue := new(MockExportQueue)

		usecase.On("BuildSpreadsheet", mock.Anything).Return(nil, assert.AnError)

		worker := NewWorker(logger, queue, usecase, storage, 1)
		worker.processJob(ctx, queuedJob(10))

		queue.AssertNotCalled(t, "Ack", mock.Anything)
	})
}
