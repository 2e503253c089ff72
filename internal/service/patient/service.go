package patient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/telehealth/patient-service/internal/model"
	"github.com/telehealth/patient-service/internal/rabbitmq/queue"
	patientrepo "github.com/telehealth/patient-service/internal/repository/patient"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/patient/mock.go -package=mocks

type patientRepository interface {
	CreatePatient(context.Context, model.Patient) (int64, error)
	GetPatientByID(context.Context, int64) (model.Patient, error)
	GetPatientByEmail(context.Context, string) (model.Patient, error)
	UpdatePatient(context.Context, model.Patient) error
	DeletePatient(context.Context, int64) error
	ListPatients(ctx context.Context, limit, offset int) ([]model.Patient, error)
	CountPatients(context.Context) (int64, error)
}

type jobPublisher interface {
	Publish(job queue.Job, strategy retry.Strategy) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// Page is one slice of the patient listing plus the totals the listing
// endpoint reports.
type Page struct {
	Total       int64
	Pages       int
	CurrentPage int
	Patients    []model.Patient
}

type Service struct {
	repo  patientRepository
	queue jobPublisher
	cache cache
}

func NewService(repo patientRepository, queue jobPublisher, cache cache) *Service {
	return &Service{repo: repo, queue: queue, cache: cache}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("patient:%d", id)
}

// cachePatient stores p in the cache; failures are logged and non-fatal.
func (s *Service) cachePatient(ctx context.Context, strategy retry.Strategy, p model.Patient) {
	body, err := json.Marshal(p)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("id", p.ID).Msg("failed to marshal patient for cache")
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, cacheKey(p.ID), string(body)); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", p.ID).Msg("failed to cache patient")
	}
}

// enqueueNotification submits a notification job for p. It runs only after
// the write has committed, and a publish failure never reaches the caller:
// the job is best-effort from the request's point of view.
func (s *Service) enqueueNotification(strategy retry.Strategy, p model.Patient) {
	job := queue.Job{
		ID:        uuid.New(),
		PatientID: p.ID,
		Name:      p.Name,
		Contact:   p.Email,
		Channel:   model.ChannelEmail,
	}

	if err := s.queue.Publish(job, strategy); err != nil {
		zlog.Logger.Error().Err(err).Int64("patient_id", p.ID).Msg("failed to publish notification job")
	}
}

// CreatePatient stores a new patient and enqueues a notification for it.
// The email lookup gives a fast answer for the common duplicate case; the
// insert itself still hits the unique constraint, so two concurrent creates
// with the same email cannot both succeed.
func (s *Service) CreatePatient(ctx context.Context, strategy retry.Strategy, name, email, phone string) (model.Patient, error) {
	_, err := s.repo.GetPatientByEmail(ctx, email)
	if err == nil {
		return model.Patient{}, fmt.Errorf("create patient: %w", patientrepo.ErrEmailTaken)
	}
	if !errors.Is(err, patientrepo.ErrPatientNotFound) {
		return model.Patient{}, fmt.Errorf("create patient: %w", err)
	}

	p := model.Patient{Name: name, Email: email, Phone: phone}

	id, err := s.repo.CreatePatient(ctx, p)
	if err != nil {
		return model.Patient{}, fmt.Errorf("create patient: %w", err)
	}
	p.ID = id

	s.cachePatient(ctx, strategy, p)
	s.enqueueNotification(strategy, p)

	return p, nil
}

// GetPatient returns the patient with the given id, serving from the cache
// when possible.
func (s *Service) GetPatient(ctx context.Context, strategy retry.Strategy, id int64) (model.Patient, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, cacheKey(id))
	if err != nil && !errors.Is(err, goredis.Nil) {
		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to get patient from cache")
	}

	if err == nil {
		var p model.Patient
		if err := json.Unmarshal([]byte(cached), &p); err == nil {
			return p, nil
		}

		zlog.Logger.Error().Int64("id", id).Msg("failed to unmarshal cached patient")
	}

	p, err := s.repo.GetPatientByID(ctx, id)
	if err != nil {
		return model.Patient{}, fmt.Errorf("get patient: %w", err)
	}

	s.cachePatient(ctx, strategy, p)

	return p, nil
}

// UpdatePatient applies the provided fields to an existing patient and
// enqueues a notification. Omitted fields are left untouched. Changing the
// email to another patient's email fails with ErrEmailTaken; re-submitting
// the patient's own email is a no-op, not a conflict.
func (s *Service) UpdatePatient(ctx context.Context, strategy retry.Strategy, id int64, patch model.PatientPatch) (model.Patient, error) {
	p, err := s.repo.GetPatientByID(ctx, id)
	if err != nil {
		return model.Patient{}, fmt.Errorf("update patient: %w", err)
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != p.Email {
		// Re-submitting the patient's own email is not a conflict;
		// only a different record holding the new email is.
		other, err := s.repo.GetPatientByEmail(ctx, *patch.Email)
		if err == nil && other.ID != id {
			return model.Patient{}, fmt.Errorf("update patient: %w", patientrepo.ErrEmailTaken)
		}
		if err != nil && !errors.Is(err, patientrepo.ErrPatientNotFound) {
			return model.Patient{}, fmt.Errorf("update patient: %w", err)
		}
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}

	if err := s.repo.UpdatePatient(ctx, p); err != nil {
		return model.Patient{}, fmt.Errorf("update patient: %w", err)
	}

	s.cachePatient(ctx, strategy, p)
	s.enqueueNotification(strategy, p)

	return p, nil
}

// DeletePatient removes a patient. Deletion triggers no notification.
func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	if err := s.repo.DeletePatient(ctx, id); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}

	if err := s.cache.Del(ctx, cacheKey(id)).Err(); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to evict patient from cache")
	}

	return nil
}

// ListPatients returns one page of patients in insertion order together
// with the total record and page counts. Page and perPage must already be
// validated as positive by the caller.
func (s *Service) ListPatients(ctx context.Context, page, perPage int) (Page, error) {
	total, err := s.repo.CountPatients(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list patients: %w", err)
	}

	patients, err := s.repo.ListPatients(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return Page{}, fmt.Errorf("list patients: %w", err)
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return Page{
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		Patients:    patients,
	}, nil
}
