package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-SalonAgenda/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *createAppointment.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createAppointment.Response{Appointment: &domain.Appointment{
		ID:               7,
		ClientName:       req.ClientName,
		ServiceName:      req.ServiceName,
		ProfessionalName: req.ProfessionalName,
		Date:             req.Date,
		Time:             req.Time,
		Status:           domain.StatusScheduled,
	}}, nil
}

const validBody = `{"date":"2026-03-10","time":"10:30","professionalName":"Ana","clientName":"Maria","serviceName":"Corte"}`

func do(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := do(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Equal(t, types.TimeString("10:30"), uc.got.Time)

	var body models.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "Ana-10:30", body.Cell)
	assert.Equal(t, "scheduled", body.Status)
}

func TestHandle_BadRequest(t *testing.T) {
	bodies := []string{
		``,
		`{"date":`,
		`{"date":"10/03/2026","time":"10:30"}`,
		`{"date":"2026-03-10","time":"25:00"}`,
	}
	for _, b := range bodies {
		rec := do(t, &fakeUseCase{}, b)
		assert.Equal(t, http.StatusBadRequest, rec.Code, b)
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: name", createAppointment.ErrInvalidInput), http.StatusBadRequest},
		{createAppointment.ErrInvalidSlot, http.StatusBadRequest},
		{createAppointment.ErrCellOccupied, http.StatusConflict},
		{createAppointment.ErrClientNotFound, http.StatusNotFound},
		{createAppointment.ErrServiceNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := do(t, &fakeUseCase{err: c.err}, validBody)
		assert.Equal(t, c.want, rec.Code, c.err.Error())
	}
}
