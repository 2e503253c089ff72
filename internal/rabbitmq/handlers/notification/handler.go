package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/telehealth/patient-service/internal/config"
	"github.com/telehealth/patient-service/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks

type senderRegistry interface {
	Send(channel, to, msg string) error
}

type jobRequeuer interface {
	Publish(job queue.Job, strategy retry.Strategy) error
}

// Handler executes one send attempt per delivery. A failed attempt is
// republished after an exponential backoff instead of sleeping inside the
// worker, so a retrying job never blocks other jobs.
type Handler struct {
	senders senderRegistry
	queue   jobRequeuer
	policy  config.Notify
}

func NewHandler(senders senderRegistry, q jobRequeuer, policy config.Notify) *Handler {
	return &Handler{
		senders: senders,
		queue:   q,
		policy:  policy,
	}
}

// backoffDelay returns the wait before the next attempt of a job whose
// attempt-th try just failed: unit * 2^(attempt-1), i.e. 1, 2, 4 units.
func backoffDelay(unit time.Duration, attempt int) time.Duration {
	return unit << (attempt - 1)
}

// HandleMessage runs a single attempt of job. On success the job terminates;
// on failure it is rescheduled until the configured attempt budget is spent,
// after which the failure is logged and the job dropped. Exhausted jobs are
// not persisted anywhere.
func (h *Handler) HandleMessage(ctx context.Context, job queue.Job, strategy retry.Strategy) {
	job.Attempt++

	body := fmt.Sprintf("Hello %s, your patient record has been updated.", job.Name)

	err := h.senders.Send(job.Channel, job.Contact, body)
	if err == nil {
		zlog.Logger.Info().
			Str("job_id", job.ID.String()).
			Int("attempt", job.Attempt).
			Msgf("Notification sent successfully to %s (%s) via %s", job.Name, job.Contact, job.Channel)
		return
	}

	zlog.Logger.Warn().
		Err(err).
		Str("job_id", job.ID.String()).
		Int64("patient_id", job.PatientID).
		Msgf("Failed to send notification to patient %d: %v (attempt %d/%d)",
			job.PatientID, err, job.Attempt, h.policy.MaxAttempts)

	if job.Attempt >= h.policy.MaxAttempts {
		zlog.Logger.Error().
			Str("job_id", job.ID.String()).
			Int64("patient_id", job.PatientID).
			Msgf("notification permanently failed after %d attempts", job.Attempt)
		return
	}

	delay := backoffDelay(h.policy.RetryUnit, job.Attempt)
	requeued := job

	time.AfterFunc(delay, func() {
		if err := h.queue.Publish(requeued, strategy); err != nil {
			zlog.Logger.Error().
				Err(err).
				Str("job_id", requeued.ID.String()).
				Msg("failed to requeue notification")
		}
	})
}
