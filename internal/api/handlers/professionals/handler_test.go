package professionals

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/professionals"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/professionals/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct{ mock.Mock }

func (m *mockService) List(ctx context.Context, onlyActive bool) (*models.ProfessionalListResponse, error) {
	args := m.Called(ctx, onlyActive)
	resp, _ := args.Get(0).(*models.ProfessionalListResponse)
	return resp, args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.ProfessionalResponse)
	return resp, args.Error(1)
}

func (m *mockService) Create(ctx context.Context, p *domain.Professional) (*models.ProfessionalResponse, error) {
	args := m.Called(ctx, p)
	resp, _ := args.Get(0).(*models.ProfessionalResponse)
	return resp, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, p *domain.Professional) (*models.ProfessionalResponse, error) {
	args := m.Called(ctx, p)
	resp, _ := args.Get(0).(*models.ProfessionalResponse)
	return resp, args.Error(1)
}

func (m *mockService) ToggleActive(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.ProfessionalResponse)
	return resp, args.Error(1)
}

func (m *mockService) UploadAvatar(ctx context.Context, id int64, contentType string, data []byte) (*models.ProfessionalResponse, error) {
	args := m.Called(ctx, id, contentType, data)
	resp, _ := args.Get(0).(*models.ProfessionalResponse)
	return resp, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func withID(r *http.Request, id string) *http.Request {
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestList_ActiveFilter(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, true).Return(&models.ProfessionalListResponse{}, nil)
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/professionals?active=true", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/professionals?active=talvez", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreate_DefaultsActive(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Professional) bool {
		return p.Name == "Ana" && p.IsActive
	})).Return(&models.ProfessionalResponse{ID: 1, Name: "Ana", IsActive: true}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/professionals", strings.NewReader(`{"name":"Ana"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestToggleActive_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("ToggleActive", mock.Anything, int64(9)).Return(nil, professionals.ErrProfessionalNotFound)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).ToggleActive(rec, withID(httptest.NewRequest(http.MethodPatch, "/api/v1/professionals/9/toggle-active", nil), "9"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadAvatar(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n....")
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"invalid image", professionals.ErrInvalidImage, http.StatusBadRequest},
		{"storage down", professionals.ErrUploadFailed, http.StatusBadGateway},
		{"internal", errors.New("db"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &mockService{}
			var resp *models.ProfessionalResponse
			if c.err == nil {
				resp = &models.ProfessionalResponse{ID: 2}
			}
			svc.On("UploadAvatar", mock.Anything, int64(2), "image/png", png).Return(resp, c.err)

			req := httptest.NewRequest(http.MethodPut, "/api/v1/professionals/2/avatar", bytes.NewReader(png))
			req.Header.Set("Content-Type", "image/png")
			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).UploadAvatar(rec, withID(req, "2"))

			assert.Equal(t, c.want, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestUploadAvatar_EmptyBody(t *testing.T) {
	svc := &mockService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).UploadAvatar(rec, withID(httptest.NewRequest(http.MethodPut, "/api/v1/professionals/2/avatar", nil), "2"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "UploadAvatar", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
