package exportqueue

import (
	"context"
	"fmt"
	"sync"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/app/models"
	"kemandirian-service/internal/pkg/constvars"
	"kemandirian-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service manages the RabbitMQ queue that feeds the spreadsheet worker.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewService declares the durable job queue, enables publisher confirms, and
// sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}
	return svc, nil
}

// Enqueue publishes a job with persistence and waits for the broker confirm.
func (s *Service) Enqueue(ctx context.Context, job *models.SpreadsheetJob) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("ExportQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingJobIDKey, job.JobID),
	)

	body, err := json.Marshal(job)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}
	return nil
}

// FetchN retrieves up to max jobs using basic.get without auto-ack. Payloads
// that fail to decode are acked away so they cannot poison the loop.
func (s *Service) FetchN(ctx context.Context, max int) ([]contracts.QueuedSpreadsheetJob, error) {
	if max <= 0 {
		max = 1
	}
	jobs := make([]contracts.QueuedSpreadsheetJob, 0, max)

	for i := 0; i < max; i++ {
		delivery, ok, err := s.ch.Get(s.queueName, false)
		if err != nil {
			return nil, exceptions.ErrQueueConsume(err)
		}
		if !ok {
			break
		}
		var job models.SpreadsheetJob
		if err := json.Unmarshal(delivery.Body, &job); err != nil {
			s.log.Error("dropping undecodable job payload", zap.Error(err))
			_ = delivery.Ack(false)
			continue
		}
		jobs = append(jobs, contracts.QueuedSpreadsheetJob{DeliveryTag: delivery.DeliveryTag, Job: job})
	}

	return jobs, nil
}

// Ack acknowledges a job by delivery tag.
func (s *Service) Ack(deliveryTag uint64) error {
	return s.ch.Ack(deliveryTag, false)
}
