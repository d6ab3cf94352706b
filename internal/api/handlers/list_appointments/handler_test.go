package list_appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/service/appointments"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.ListByDateRequest
	err error
}

func (f *fakeService) ListByDate(_ context.Context, req *models.ListByDateRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=2026-03-10&professional=Ana&status=confirmed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.ProfessionalName)
	assert.Equal(t, "Ana", *svc.got.ProfessionalName)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "confirmed", *svc.got.Status)
}

func TestHandle_OptionalFilters(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=2026-03-10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.ProfessionalName)
	assert.Nil(t, svc.got.Status)
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: appointments.ErrInvalidInput}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=2026-03-10&status=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db")}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?date=2026-03-10", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
