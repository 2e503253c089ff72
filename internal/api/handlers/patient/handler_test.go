package patient

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/telehealth/patient-service/internal/api/dto"
	"github.com/telehealth/patient-service/internal/config"
	mocks "github.com/telehealth/patient-service/internal/mocks/api/handlers/patient"
	"github.com/telehealth/patient-service/internal/model"
	patientrepo "github.com/telehealth/patient-service/internal/repository/patient"
	patientsvc "github.com/telehealth/patient-service/internal/service/patient"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockpatientService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockpatientService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{Attempts: 1, Delay: time.Millisecond}}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func newTestContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var data map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	return data
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.CreateRequest{Name: "A", Email: "a@x.com", Phone: "1"}
	c, w := newTestContext(t, http.MethodPost, "/patients", reqBody)

	created := model.Patient{ID: 1, Name: "A", Email: "a@x.com", Phone: "1"}
	mockService.EXPECT().
		CreatePatient(gomock.Any(), cfg.Retry, "A", "a@x.com", "1").
		Return(created, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)

	data := decodeBody(t, w)
	assert.Equal(t, "Patient created successfully", data["message"])
	patient := data["patient"].(map[string]any)
	assert.Equal(t, float64(1), patient["id"])
	assert.Equal(t, "a@x.com", patient["email"])
}

func TestHandler_Create_MissingField(t *testing.T) {
	handler, _, _ := setupHandler(t)

	c, w := newTestContext(t, http.MethodPost, "/patients", map[string]string{
		"name":  "A",
		"phone": "1",
	})

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	assert.Equal(t, "Missing required field: email", decodeBody(t, w)["message"])
}

func TestHandler_Create_DuplicateEmail(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.CreateRequest{Name: "A", Email: "a@x.com", Phone: "1"}
	c, w := newTestContext(t, http.MethodPost, "/patients", reqBody)

	mockService.EXPECT().
		CreatePatient(gomock.Any(), cfg.Retry, "A", "a@x.com", "1").
		Return(model.Patient{}, patientrepo.ErrEmailTaken)

	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
	assert.Equal(t, "Patient with this email already exists", decodeBody(t, w)["message"])
}

func TestHandler_Get_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	c, w := newTestContext(t, http.MethodGet, "/patients/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	p := model.Patient{ID: 1, Name: "A", Email: "a@x.com", Phone: "1"}
	mockService.EXPECT().
		GetPatient(gomock.Any(), cfg.Retry, int64(1)).
		Return(p, nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	data := decodeBody(t, w)
	assert.Equal(t, "A", data["name"])
	assert.Equal(t, "a@x.com", data["email"])
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	c, w := newTestContext(t, http.MethodGet, "/patients/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	mockService.EXPECT().
		GetPatient(gomock.Any(), cfg.Retry, int64(42)).
		Return(model.Patient{}, patientrepo.ErrPatientNotFound)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	assert.Equal(t, "Patient not found", decodeBody(t, w)["message"])
}

func TestHandler_Get_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	c, w := newTestContext(t, http.MethodGet, "/patients/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Update_Partial(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	c, w := newTestContext(t, http.MethodPut, "/patients/1", map[string]string{"phone": "999"})
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	phone := "999"
	updated := model.Patient{ID: 1, Name: "A", Email: "a@x.com", Phone: "999"}
	mockService.EXPECT().
		UpdatePatient(gomock.Any(), cfg.Retry, int64(1), model.PatientPatch{Phone: &phone}).
		Return(updated, nil)

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	data := decodeBody(t, w)
	assert.Equal(t, "Patient updated successfully", data["message"])
	patient := data["patient"].(map[string]any)
	assert.Equal(t, "999", patient["phone"])
	assert.Equal(t, "a@x.com", patient["email"])
}

func TestHandler_Update_DuplicateEmail(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	c, w := newTestContext(t, http.MethodPut, "/patients/1", map[string]string{"email": "b@x.com"})
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	mockService.EXPECT().
		UpdatePatient(gomock.Any(), cfg.Retry, int64(1), gomock.Any()).
		Return(model.Patient{}, patientrepo.ErrEmailTaken)

	handler.Update(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
	assert.Equal(t, "Another patient with this email already exists", decodeBody(t, w)["message"])
}

func TestHandler_Update_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	c, w := newTestContext(t, http.MethodPut, "/patients/42", map[string]string{"name": "B"})
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	mockService.EXPECT().
		UpdatePatient(gomock.Any(), cfg.Retry, int64(42), gomock.Any()).
		Return(model.Patient{}, patientrepo.ErrPatientNotFound)

	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Delete_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	c, w := newTestContext(t, http.MethodDelete, "/patients/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	mockService.EXPECT().
		DeletePatient(gomock.Any(), int64(1)).
		Return(nil)

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "Patient deleted successfully", decodeBody(t, w)["message"])
}

func TestHandler_Delete_NotFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	c, w := newTestContext(t, http.MethodDelete, "/patients/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	mockService.EXPECT().
		DeletePatient(gomock.Any(), int64(42)).
		Return(patientrepo.ErrPatientNotFound)

	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_List_Defaults(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	c, w := newTestContext(t, http.MethodGet, "/patients", nil)

	page := patientsvc.Page{
		Total:       2,
		Pages:       1,
		CurrentPage: 1,
		Patients: []model.Patient{
			{ID: 1, Name: "A", Email: "a@x.com", Phone: "1"},
			{ID: 2, Name: "B", Email: "b@x.com", Phone: "2"},
		},
	}

	mockService.EXPECT().
		ListPatients(gomock.Any(), 1, 10).
		Return(page, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	data := decodeBody(t, w)
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(1), data["pages"])
	assert.Equal(t, float64(1), data["current_page"])
	assert.Len(t, data["patients"], 2)
}

func TestHandler_List_ExplicitPaging(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	c, w := newTestContext(t, http.MethodGet, "/patients?page=2&per_page=5", nil)

	mockService.EXPECT().
		ListPatients(gomock.Any(), 2, 5).
		Return(patientsvc.Page{Total: 6, Pages: 2, CurrentPage: 2, Patients: []model.Patient{{ID: 6}}}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, float64(2), decodeBody(t, w)["current_page"])
}

func TestHandler_List_InvalidPaging(t *testing.T) {
	handler, _, _ := setupHandler(t)

	for _, target := range []string{
		"/patients?page=0",
		"/patients?page=-1",
		"/patients?per_page=0",
		"/patients?per_page=abc",
	} {
		c, w := newTestContext(t, http.MethodGet, target, nil)

		handler.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode, target)
	}
}
