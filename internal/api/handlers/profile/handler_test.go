package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/profile"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/profile/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct{ mock.Mock }

func (m *mockService) Get(ctx context.Context, userID int64) (*models.ProfileResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*models.ProfileResponse)
	return resp, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, p *domain.Profile) (*models.ProfileResponse, error) {
	args := m.Called(ctx, p)
	resp, _ := args.Get(0).(*models.ProfileResponse)
	return resp, args.Error(1)
}

func (m *mockService) UploadAvatar(ctx context.Context, userID int64, contentType string, data []byte) (*models.ProfileResponse, error) {
	args := m.Called(ctx, userID, contentType, data)
	resp, _ := args.Get(0).(*models.ProfileResponse)
	return resp, args.Error(1)
}

// serve прогоняет запрос через middleware Auth, как это делает роутер
func serve(h http.HandlerFunc, req *http.Request, userID string) *httptest.ResponseRecorder {
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(h).ServeHTTP(rec, req)
	return rec
}

func TestGet_UsesAuthenticatedUser(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything, int64(12)).Return(&models.ProfileResponse{UserID: 12}, nil)
	svc.On("Get", mock.Anything, int64(13)).Return(nil, profile.ErrProfileNotFound)
	h := NewHandler(svc, nopLogger{})

	assert.Equal(t, http.StatusOK, serve(h.Get, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil), "12").Code)
	assert.Equal(t, http.StatusNotFound, serve(h.Get, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil), "13").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h.Get, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil), "").Code)
}

func TestGet_WithoutMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&mockService{}, nopLogger{}).Get(rec, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdate(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.UserID == 12 && p.Name == "Carla" && *p.Phone == "1134567890"
	})).Return(&models.ProfileResponse{UserID: 12, Name: "Carla"}, nil)
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(`{"name":"Carla","phone":"(11) 3456-7890"}`))
	assert.Equal(t, http.StatusOK, serve(h.Update, req, "12").Code)
	svc.AssertExpectations(t)

	req = httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(`{"name":"Carla","email":"carla"}`))
	assert.Equal(t, http.StatusBadRequest, serve(h.Update, req, "12").Code)
}
