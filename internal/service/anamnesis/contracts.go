package anamnesis

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// AnamnesisRepository интерфейс репозитория анкет
type AnamnesisRepository interface {
	GetTemplates(ctx context.Context) ([]*domain.AnamnesisTemplate, error)
	GetTemplateByID(ctx context.Context, id int64) (*domain.AnamnesisTemplate, error)
	CreateTemplate(ctx context.Context, t *domain.AnamnesisTemplate) (*domain.AnamnesisTemplate, error)
	CreateResponse(ctx context.Context, resp *domain.AnamnesisResponse) (*domain.AnamnesisResponse, error)
	GetResponsesByClient(ctx context.Context, clientID int64) ([]*domain.AnamnesisResponse, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
