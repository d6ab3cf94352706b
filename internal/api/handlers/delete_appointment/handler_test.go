package delete_appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonAgenda/internal/service/appointments"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	deleted []int64
	err     error
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func request(id string) *http.Request {
	return mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+id, nil), map[string]string{"id": id})
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, request("9"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int64{9}, svc.deleted)

	rec = httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, request("-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: appointments.ErrAppointmentNotFound}, nopLogger{}).Handle(rec, request("9"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db")}, nopLogger{}).Handle(rec, request("9"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
