package patient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/telehealth/patient-service/internal/api/dto"
	"github.com/telehealth/patient-service/internal/api/respond"
	"github.com/telehealth/patient-service/internal/config"
	"github.com/telehealth/patient-service/internal/model"
	patientrepo "github.com/telehealth/patient-service/internal/repository/patient"
	patientsvc "github.com/telehealth/patient-service/internal/service/patient"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/patient/mock.go -package=mocks

type patientService interface {
	CreatePatient(ctx context.Context, strategy retry.Strategy, name, email, phone string) (model.Patient, error)
	GetPatient(ctx context.Context, strategy retry.Strategy, id int64) (model.Patient, error)
	UpdatePatient(ctx context.Context, strategy retry.Strategy, id int64, patch model.PatientPatch) (model.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
	ListPatients(ctx context.Context, page, perPage int) (patientsvc.Page, error)
}

type Handler struct {
	service   patientService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(s patientService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// mutationResponse is the body of successful create/update/delete calls.
type mutationResponse struct {
	Message string         `json:"message"`
	Patient *model.Patient `json:"patient,omitempty"`
}

// listResponse is the body of the paginated listing.
type listResponse struct {
	Total       int64           `json:"total"`
	Pages       int             `json:"pages"`
	CurrentPage int             `json:"current_page"`
	Patients    []model.Patient `json:"patients"`
}

func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			field := strings.ToLower(vErrs[0].Field())
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("Missing required field: %s", field))
			return
		}

		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	p, err := h.service.CreatePatient(c.Request.Context(), h.cfg.Retry, req.Name, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, patientrepo.ErrEmailTaken) {
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("Patient with this email already exists"))
			return
		}

		zlog.Logger.Error().Err(err).Str("email", req.Email).Msg("failed to create patient")
		respond.Internal(c.Writer, err)
		return
	}

	respond.Created(c.Writer, mutationResponse{
		Message: "Patient created successfully",
		Patient: &p,
	})
}

func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	p, err := h.service.GetPatient(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, patientrepo.ErrPatientNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("Patient not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to get patient")
		respond.Internal(c.Writer, err)
		return
	}

	respond.OK(c.Writer, p)
}

func (h *Handler) Update(c *ginext.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	var req dto.UpdateRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	patch := model.PatientPatch{Name: req.Name, Email: req.Email, Phone: req.Phone}

	p, err := h.service.UpdatePatient(c.Request.Context(), h.cfg.Retry, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, patientrepo.ErrPatientNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("Patient not found"))
		case errors.Is(err, patientrepo.ErrEmailTaken):
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("Another patient with this email already exists"))
		default:
			zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to update patient")
			respond.Internal(c.Writer, err)
		}
		return
	}

	respond.OK(c.Writer, mutationResponse{
		Message: "Patient updated successfully",
		Patient: &p,
	})
}

func (h *Handler) Delete(c *ginext.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		if errors.Is(err, patientrepo.ErrPatientNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("Patient not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to delete patient")
		respond.Internal(c.Writer, err)
		return
	}

	respond.OK(c.Writer, mutationResponse{Message: "Patient deleted successfully"})
}

func (h *Handler) List(c *ginext.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("page must be a positive integer"))
		return
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil || perPage <= 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("per_page must be a positive integer"))
		return
	}

	result, err := h.service.ListPatients(c.Request.Context(), page, perPage)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list patients")
		respond.Internal(c.Writer, err)
		return
	}

	respond.OK(c.Writer, listResponse{
		Total:       result.Total,
		Pages:       result.Pages,
		CurrentPage: result.CurrentPage,
		Patients:    result.Patients,
	})
}

// patientID parses the id path parameter. An unparseable id can never name
// an existing record, so it responds 404 like the lookup would.
func (h *Handler) patientID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("Patient not found"))
		return 0, false
	}

	return id, true
}
