package exports

import (
	"bytes"
	"context"
	"errors"
	"time"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// Worker drains the spreadsheet job queue on a ticker with at-least-once
// semantics: a job is acked only after its artifact landed in object storage.
type Worker struct {
	log     *zap.Logger
	queue   contracts.ExportQueue
	usecase contracts.ExportUsecase
	storage contracts.ObjectStorage
	batch   int
	stop    chan struct{}
}

func NewWorker(log *zap.Logger, queue contracts.ExportQueue, usecase contracts.ExportUsecase, storage contracts.ObjectStorage, batch int) *Worker {
	if batch <= 0 {
		batch = 1
	}
	return &Worker{
		log:     log,
		queue:   queue,
		usecase: usecase,
		storage: storage,
		batch:   batch,
		stop:    make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(15 * time.Second)
	stopped := make(chan struct{})

	w.log.Info("spreadsheet export worker started")

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case <-ticker.C:
				w.runOnce(ctx)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	jobs, err := w.queue.FetchN(ctx, w.batch)
	if err != nil {
		w.log.Error("fetching spreadsheet jobs failed", zap.Error(err))
		return
	}

	for _, queued := range jobs {
		w.processJob(ctx, queued)
	}
}

func (w *Worker) processJob(ctx context.Context, queued contracts.QueuedSpreadsheetJob) {
	job := queued.Job
	w.log.Info("processing spreadsheet job",
		zap.String(constvars.LoggingJobIDKey, job.JobID),
		zap.String(constvars.LoggingObjectNameKey, job.ObjectName),
	)

	artifact, err := w.usecase.BuildSpreadsheet(ctx)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound {
			// The store emptied between enqueue and processing; nothing to
			// render, so the job is done.
			w.log.Warn("no records left to export, dropping job",
				zap.String(constvars.LoggingJobIDKey, job.JobID),
			)
			if err := w.queue.Ack(queued.DeliveryTag); err != nil {
				w.log.Error("ack failed", zap.Error(err))
			}
			return
		}
		w.log.Error("building spreadsheet failed, job stays queued",
			zap.String(constvars.LoggingJobIDKey, job.JobID),
			zap.Error(err),
		)
		return
	}

	err = w.storage.PutObject(ctx, job.ObjectName, constvars.MIMEApplicationXLSX, bytes.NewReader(artifact), int64(len(artifact)))
	if err != nil {
		w.log.Error("uploading spreadsheet failed, job stays queued",
			zap.String(constvars.LoggingJobIDKey, job.JobID),
			zap.Error(err),
		)
		return
	}

	if err := w.queue.Ack(queued.DeliveryTag); err != nil {
		w.log.Error("ack failed after upload", zap.Error(err))
		return
	}

	w.log.Info("spreadsheet job completed",
		zap.String(constvars.LoggingJobIDKey, job.JobID),
		zap.String(constvars.LoggingObjectNameKey, job.ObjectName),
	)
}
