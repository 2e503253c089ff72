package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/telehealth/patient-service/internal/mocks/worker"
	"github.com/telehealth/patient-service/internal/model"
	"github.com/telehealth/patient-service/internal/rabbitmq/queue"
)

func TestDispatcher_Run_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockjobConsumer(ctrl)
	mockHandler := mocks.NewMockjobHandler(ctrl)

	d := NewDispatcher(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	job := queue.Job{
		ID:        uuid.New(),
		PatientID: 1,
		Name:      "A",
		Contact:   "a@x.com",
		Channel:   model.ChannelEmail,
	}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.Job, _ retry.Strategy) error {
			out <- job
			return nil
		},
	)

	mockHandler.EXPECT().HandleMessage(gomock.Any(), job, strategy)

	go d.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestDispatcher_Run_MultipleWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockjobConsumer(ctrl)
	mockHandler := mocks.NewMockjobHandler(ctrl)

	d := NewDispatcher(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	jobs := []queue.Job{
		{ID: uuid.New(), PatientID: 1, Channel: model.ChannelEmail},
		{ID: uuid.New(), PatientID: 2, Channel: model.ChannelEmail},
		{ID: uuid.New(), PatientID: 3, Channel: model.ChannelSMS},
	}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.Job, _ retry.Strategy) error {
			for _, j := range jobs {
				out <- j
			}
			return nil
		},
	)

	done := make(chan struct{}, len(jobs))
	mockHandler.EXPECT().
		HandleMessage(gomock.Any(), gomock.Any(), strategy).
		Do(func(_ context.Context, _ queue.Job, _ retry.Strategy) {
			done <- struct{}{}
		}).
		Times(len(jobs))

	go d.Run(ctx, strategy, 3)

	for i := 0; i < len(jobs); i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("job %d was not handled", i)
		}
	}
}

func TestDispatcher_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockjobConsumer(ctrl)
	mockHandler := mocks.NewMockjobHandler(ctrl)

	d := NewDispatcher(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, out chan<- queue.Job, _ retry.Strategy) error {
			<-ctx.Done()
			return nil
		},
	)

	go d.Run(ctx, strategy, 1)

	cancel()

	require.Eventually(t, func() bool { return true }, time.Second, 50*time.Millisecond)
	assert.True(t, true, "dispatcher stopped cleanly")
}
