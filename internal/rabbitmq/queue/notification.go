package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/telehealth/patient-service/internal/config"
)

// Job is a single notification dispatch job. It lives only on the queue
// and in worker memory; there is no dead-letter store for exhausted jobs.
type Job struct {
	ID        uuid.UUID `json:"id"`
	PatientID int64     `json:"patient_id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Channel   string    `json:"channel"`
	// Attempt is the number of send attempts already made. A freshly
	// enqueued job carries 0; each delivery increments it.
	Attempt int `json:"attempt"`
}

// NotificationQueue wraps the RabbitMQ topology used for notification jobs:
// a direct exchange bound to one durable queue. Retries re-enter through the
// same queue with an incremented attempt counter.
type NotificationQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
}

// New declares the exchange and queue and returns a ready publisher/consumer
// pair.
func New(ch *rabbitmq.Channel, cfg *config.Config) (*NotificationQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.RabbitMQ.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	q, err := qm.DeclareQueue(cfg.RabbitMQ.Queue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RabbitMQ.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(q.Name))

	return &NotificationQueue{
		Publisher:  pub,
		Consumer:   cons,
		routingKey: cfg.RabbitMQ.RoutingKey,
	}, nil
}

// Publish enqueues a job. It is used both for the initial enqueue after a
// committed write and for delayed requeues of failed attempts.
func (q *NotificationQueue) Publish(job Job, strategy retry.Strategy) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes deliveries into Jobs and forwards them to out until ctx
// is cancelled.
func (q *NotificationQueue) Consume(ctx context.Context, out chan<- Job, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var job Job
			if err := json.Unmarshal(m, &job); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal job")
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- job:
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
