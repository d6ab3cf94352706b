package profile

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/profile/models"
)

type ProfileService interface {
	Get(ctx context.Context, userID int64) (*models.ProfileResponse, error)
	Update(ctx context.Context, profile *domain.Profile) (*models.ProfileResponse, error)
	UploadAvatar(ctx context.Context, userID int64, contentType string, data []byte) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
