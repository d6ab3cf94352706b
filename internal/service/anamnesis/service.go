package anamnesis

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	anamnesisRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/anamnesis"
	clientRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/anamnesis/models"
)

// Service сервис анкет (шаблоны и ответы клиентов)
type Service struct {
	anamnesisRepo AnamnesisRepository
	clientRepo    ClientRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса анкет
func NewService(anamnesisRepo AnamnesisRepository, clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		anamnesisRepo: anamnesisRepo,
		clientRepo:    clientRepo,
		logger:        logger,
	}
}

// ListTemplates возвращает все шаблоны
func (s *Service) ListTemplates(ctx context.Context) (*models.TemplateListResponse, error) {
	list, err := s.anamnesisRepo.GetTemplates(ctx)
	if err != nil {
		s.logger.Error("ListTemplates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTemplates - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTemplateList(list), nil
}

// GetTemplate получает шаблон по ID
func (s *Service) GetTemplate(ctx context.Context, id int64) (*models.TemplateResponse, error) {
	t, err := s.getTemplate(ctx, "GetTemplate", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainTemplate(t), nil
}

// CreateTemplate проверяет и сохраняет шаблон
func (s *Service) CreateTemplate(ctx context.Context, t *domain.AnamnesisTemplate) (*models.TemplateResponse, error) {
	s.logger.Info("CreateTemplate: name=%q, fields=%d", t.Name, len(t.Fields))

	if err := t.Validate(); err != nil {
		s.logger.Warn("CreateTemplate: invalid template: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	created, err := s.anamnesisRepo.CreateTemplate(ctx, t)
	if err != nil {
		s.logger.Error("CreateTemplate: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTemplate - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainTemplate(created), nil
}

// SubmitResponse сохраняет ответы клиента, проверив их по шаблону
func (s *Service) SubmitResponse(ctx context.Context, req *models.SubmitResponseRequest) (*models.AnswersResponse, error) {
	s.logger.Info("SubmitResponse: template=%d, client=%d, answers=%d", req.TemplateID, req.ClientID, len(req.Answers))

	template, err := s.getTemplate(ctx, "SubmitResponse", req.TemplateID)
	if err != nil {
		return nil, err
	}
	if err := s.checkClient(ctx, "SubmitResponse", req.ClientID); err != nil {
		return nil, err
	}

	answers, err := domain.DecodeAnswers(req.Answers)
	if err != nil {
		s.logger.Warn("SubmitResponse: failed to decode answers: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}
	if err := template.ValidateAnswers(answers); err != nil {
		s.logger.Warn("SubmitResponse: answers do not match template %d: %v", template.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
	}

	saved, err := s.anamnesisRepo.CreateResponse(ctx, &domain.AnamnesisResponse{
		TemplateID: template.ID,
		ClientID:   req.ClientID,
		Answers:    answers,
	})
	if err != nil {
		s.logger.Error("SubmitResponse: repository error: %v", err)
		return nil, fmt.Errorf("%w: SubmitResponse - repository error: %v", ErrInternal, err)
	}

	resp, err := models.FromDomainResponse(saved)
	if err != nil {
		return nil, fmt.Errorf("%w: SubmitResponse - encode answers: %v", ErrInternal, err)
	}
	return resp, nil
}

// ListClientResponses возвращает анкеты клиента
func (s *Service) ListClientResponses(ctx context.Context, clientID int64) (*models.AnswersListResponse, error) {
	if err := s.checkClient(ctx, "ListClientResponses", clientID); err != nil {
		return nil, err
	}

	list, err := s.anamnesisRepo.GetResponsesByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ListClientResponses: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListClientResponses - repository error: %v", ErrInternal, err)
	}

	items := make([]models.AnswersResponse, 0, len(list))
	for _, r := range list {
		resp, err := models.FromDomainResponse(r)
		if err != nil {
			return nil, fmt.Errorf("%w: ListClientResponses - encode answers: %v", ErrInternal, err)
		}
		items = append(items, *resp)
	}
	return &models.AnswersListResponse{Responses: items, Total: len(items)}, nil
}

func (s *Service) getTemplate(ctx context.Context, op string, id int64) (*domain.AnamnesisTemplate, error) {
	t, err := s.anamnesisRepo.GetTemplateByID(ctx, id)
	if err != nil {
		if errors.Is(err, anamnesisRepo.ErrTemplateNotFound) {
			s.logger.Warn("%s: template id=%d not found", op, id)
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("%s: repository error for template id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return t, nil
}

func (s *Service) checkClient(ctx context.Context, op string, clientID int64) error {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("%s: client id=%d not found", op, clientID)
			return ErrClientNotFound
		}
		s.logger.Error("%s: repository error for client id=%d: %v", op, clientID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
