package products

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/integrations/objectstorage"
)

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	GetAll(ctx context.Context, onlyActive bool) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Product, error)
	SetImageURL(ctx context.Context, id int64, url string) (*domain.Product, error)
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
