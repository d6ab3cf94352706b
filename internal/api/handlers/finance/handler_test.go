package finance

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/finance"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/finance/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context, req *models.ListRequest) (*models.EntryListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.EntryListResponse)
	return resp, args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.EntryResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.EntryResponse)
	return resp, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, e *domain.FinancialEntry) (*models.EntryResponse, error) {
	args := m.Called(ctx, e)
	resp, _ := args.Get(0).(*models.EntryResponse)
	return resp, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, e *domain.FinancialEntry) (*models.EntryResponse, error) {
	args := m.Called(ctx, e)
	resp, _ := args.Get(0).(*models.EntryResponse)
	return resp, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockService) Summary(ctx context.Context, from, to time.Time) (*models.SummaryResponse, error) {
	args := m.Called(ctx, from, to)
	resp, _ := args.Get(0).(*models.SummaryResponse)
	return resp, args.Error(1)
}

func (m *mockService) ExportCSV(ctx context.Context, req *models.ListRequest, w io.Writer) error {
	args := m.Called(ctx, req, w)
	if args.Error(0) == nil {
		_, _ = io.WriteString(w, "data;tipo\n2026-03-10;income\n")
	}
	return args.Error(0)
}

func TestCreate_RoundsAmount(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.FinancialEntry) bool {
		return e.Type == domain.EntryIncome && e.Amount == 80.13 && e.EntryDate.Day() == 10
	})).Return(&models.EntryResponse{ID: 1, Type: "income"}, nil)

	body := `{"type":"income","description":"Corte","amount":80.129,"entryDate":"2026-03-10"}`
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/financial-entries", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	bodies := map[string]string{
		"type:":        `{"type":"gift","description":"x","amount":1,"entryDate":"2026-03-10"}`,
		"amount:":      `{"type":"expense","description":"x","amount":0,"entryDate":"2026-03-10"}`,
		"entryDate:":   `{"type":"expense","description":"x","amount":5,"entryDate":"ontem"}`,
		"description:": `{"type":"expense","description":"","amount":5,"entryDate":"2026-03-10"}`,
	}
	for field, body := range bodies {
		rec := httptest.NewRecorder()
		NewHandler(&mockService{}, nopLogger{}).Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/financial-entries", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, field)
		assert.Contains(t, rec.Body.String(), field)
	}
}

func TestSummary_DefaultsToCurrentMonth(t *testing.T) {
	svc := &mockService{}
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	svc.On("Summary", mock.Anything, from, to).Return(&models.SummaryResponse{Balance: 10}, nil)

	h := NewHandler(svc, nopLogger{})
	h.now = func() time.Time { return time.Date(2026, 2, 14, 15, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	h.Summary(rec, httptest.NewRequest(http.MethodGet, "/api/v1/financial-entries/summary", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestSummary_InvalidPeriod(t *testing.T) {
	svc := &mockService{}
	svc.On("Summary", mock.Anything, mock.Anything, mock.Anything).Return(nil, finance.ErrInvalidInput)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Summary(rec, httptest.NewRequest(http.MethodGet, "/api/v1/financial-entries/summary?from=2026-03-31&to=2026-03-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportCSV(t *testing.T) {
	svc := &mockService{}
	svc.On("ExportCSV", mock.Anything, mock.MatchedBy(func(req *models.ListRequest) bool {
		return req.Type != nil && *req.Type == "income" && req.From != nil && req.To == nil
	}), mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).ExportCSV(rec, httptest.NewRequest(http.MethodGet, "/api/v1/financial-entries/export.csv?type=income&from=2026-03-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "2026-03-10;income")
}

func TestExportCSV_FailureKeepsJSONError(t *testing.T) {
	svc := &mockService{}
	svc.On("ExportCSV", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db"))

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).ExportCSV(rec, httptest.NewRequest(http.MethodGet, "/api/v1/financial-entries/export.csv", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
