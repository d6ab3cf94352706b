package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error)
	Create(ctx context.Context, service *domain.CatalogService) (*models.ServiceResponse, error)
	Update(ctx context.Context, service *domain.CatalogService) (*models.ServiceResponse, error)
	ToggleActive(ctx context.Context, id int64) (*models.ServiceResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
