package clients

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/clients/models"
)

type ClientService interface {
	List(ctx context.Context, search string) (*models.ClientListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ClientResponse, error)
	Create(ctx context.Context, client *domain.Client) (*models.ClientResponse, error)
	Update(ctx context.Context, client *domain.Client) (*models.ClientResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
