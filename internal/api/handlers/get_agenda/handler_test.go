package get_agenda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	getAgenda "github.com/m04kA/SMC-SalonAgenda/internal/usecase/get_agenda"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *getAgenda.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAgenda.Request) (*getAgenda.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	if req.View == getAgenda.ViewMobile {
		return &getAgenda.Response{Mobile: &agenda.MobileGrid{Date: "2026-03-10"}}, nil
	}
	return &getAgenda.Response{Desktop: &agenda.DesktopGrid{Date: "2026-03-10"}, Stale: true}, nil
}

func TestHandle_DefaultsToDesktop(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=2026-03-10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, getAgenda.ViewDesktop, uc.got.View)

	var body AgendaResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Stale)
	require.NotNil(t, body.Desktop)
	assert.Nil(t, body.Mobile)
}

func TestHandle_Mobile(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=2026-03-10&view=mobile", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body AgendaResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "mobile", body.View)
	assert.NotNil(t, body.Mobile)
}

func TestHandle_Errors(t *testing.T) {
	cases := []struct {
		url  string
		err  error
		want int
	}{
		{"/api/v1/agenda", nil, http.StatusBadRequest},
		{"/api/v1/agenda?date=10/03/2026", nil, http.StatusBadRequest},
		{"/api/v1/agenda?date=2026-03-10&view=tablet", fmt.Errorf("%w: view", getAgenda.ErrInvalidInput), http.StatusBadRequest},
		{"/api/v1/agenda?date=2026-03-10", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		NewHandler(&fakeUseCase{err: c.err}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, c.url, nil))
		assert.Equal(t, c.want, rec.Code, c.url)
	}
}
