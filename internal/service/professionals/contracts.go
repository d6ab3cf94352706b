package professionals

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/integrations/objectstorage"
)

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetAll(ctx context.Context, onlyActive bool) ([]*domain.Professional, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	Create(ctx context.Context, professional *domain.Professional) (*domain.Professional, error)
	Update(ctx context.Context, professional *domain.Professional) (*domain.Professional, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Professional, error)
	SetAvatarURL(ctx context.Context, id int64, url string) (*domain.Professional, error)
	Delete(ctx context.Context, id int64) error
}

// ImageUploader клиент объектного хранилища
type ImageUploader interface {
	Upload(ctx context.Context, obj objectstorage.Object) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
