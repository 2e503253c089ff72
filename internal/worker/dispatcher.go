package worker

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/telehealth/patient-service/internal/rabbitmq/queue"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type jobConsumer interface {
	Consume(ctx context.Context, out chan<- queue.Job, strategy retry.Strategy) error
}

type jobHandler interface {
	HandleMessage(ctx context.Context, job queue.Job, strategy retry.Strategy)
}

// Dispatcher runs the worker pool that consumes notification jobs. Distinct
// jobs execute concurrently with no ordering guarantee between them.
type Dispatcher struct {
	queue   jobConsumer
	handler jobHandler
}

func NewDispatcher(q jobConsumer, h jobHandler) *Dispatcher {
	return &Dispatcher{
		queue:   q,
		handler: h,
	}
}

func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	jobChan := make(chan queue.Job)

	go func() {
		if err := d.queue.Consume(ctx, jobChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume jobs")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case job := <-jobChan:
					d.handler.HandleMessage(ctx, job, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Print("dispatcher stopped")
}
