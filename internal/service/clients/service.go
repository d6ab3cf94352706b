package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	clientRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/clients/models"
)

// Service сервис клиентов салона
// Поля клиента валидируются до вызова сервиса
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List возвращает клиентов; search ищет по имени, телефону и email
func (s *Service) List(ctx context.Context, search string) (*models.ClientListResponse, error) {
	s.logger.Info("List: fetching clients, search=%q", search)

	list, err := s.clientRepo.GetAll(ctx, search)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClientList(list), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainClient(client), nil
}

// Create создает клиента
func (s *Service) Create(ctx context.Context, client *domain.Client) (*models.ClientResponse, error) {
	s.logger.Info("Create: creating client name=%q", client.Name)

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created client id=%d", created.ID)
	return models.FromDomainClient(created), nil
}

// Update обновляет клиента
func (s *Service) Update(ctx context.Context, client *domain.Client) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%d", client.ID)

	updated, err := s.clientRepo.Update(ctx, client)
	if err != nil {
		return nil, s.mapError("Update", client.ID, err)
	}
	return models.FromDomainClient(updated), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting client id=%d", id)

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, clientRepo.ErrClientNotFound) {
		s.logger.Warn("%s: client id=%d not found", op, id)
		return ErrClientNotFound
	}
	s.logger.Error("%s: repository error for client id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
