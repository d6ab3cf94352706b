package professionals

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/professionals/models"
)

type ProfessionalService interface {
	List(ctx context.Context, onlyActive bool) (*models.ProfessionalListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error)
	Create(ctx context.Context, professional *domain.Professional) (*models.ProfessionalResponse, error)
	Update(ctx context.Context, professional *domain.Professional) (*models.ProfessionalResponse, error)
	ToggleActive(ctx context.Context, id int64) (*models.ProfessionalResponse, error)
	UploadAvatar(ctx context.Context, id int64, contentType string, data []byte) (*models.ProfessionalResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
