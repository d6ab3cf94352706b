package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetAll(ctx context.Context, onlyActive bool) ([]*domain.CatalogService, error)
	GetByID(ctx context.Context, id int64) (*domain.CatalogService, error)
	Create(ctx context.Context, service *domain.CatalogService) (*domain.CatalogService, error)
	Update(ctx context.Context, service *domain.CatalogService) (*domain.CatalogService, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.CatalogService, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
