package anamnesis

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/anamnesis/models"
)

type AnamnesisService interface {
	ListTemplates(ctx context.Context) (*models.TemplateListResponse, error)
	GetTemplate(ctx context.Context, id int64) (*models.TemplateResponse, error)
	CreateTemplate(ctx context.Context, t *domain.AnamnesisTemplate) (*models.TemplateResponse, error)
	SubmitResponse(ctx context.Context, req *models.SubmitResponseRequest) (*models.AnswersResponse, error)
	ListClientResponses(ctx context.Context, clientID int64) (*models.AnswersListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
