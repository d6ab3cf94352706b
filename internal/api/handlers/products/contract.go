package products

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/products/models"
)

type ProductService interface {
	List(ctx context.Context, onlyActive bool) (*models.ProductListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ProductResponse, error)
	Create(ctx context.Context, product *domain.Product) (*models.ProductResponse, error)
	Update(ctx context.Context, product *domain.Product) (*models.ProductResponse, error)
	ToggleActive(ctx context.Context, id int64) (*models.ProductResponse, error)
	UploadImage(ctx context.Context, id int64, contentType string, data []byte) (*models.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
