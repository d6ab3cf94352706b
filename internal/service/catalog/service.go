package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/catalog/models"
)

// Service сервис каталога услуг салона
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает услуги каталога
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.ServiceListResponse, error) {
	list, err := s.serviceRepo.GetAll(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(list), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainService(svc), nil
}

// Create создает услугу
func (s *Service) Create(ctx context.Context, service *domain.CatalogService) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q", service.Name)

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(created), nil
}

// Update обновляет услугу
func (s *Service) Update(ctx context.Context, service *domain.CatalogService) (*models.ServiceResponse, error) {
	updated, err := s.serviceRepo.Update(ctx, service)
	if err != nil {
		return nil, s.mapError("Update", service.ID, err)
	}
	return models.FromDomainService(updated), nil
}

// ToggleActive меняет доступность услуги для новых записей
func (s *Service) ToggleActive(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	current, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("ToggleActive", id, err)
	}
	updated, err := s.serviceRepo.SetActive(ctx, id, !current.IsActive)
	if err != nil {
		return nil, s.mapError("ToggleActive", id, err)
	}
	s.logger.Info("ToggleActive: service id=%d active=%t", id, updated.IsActive)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, catalogRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%d not found", op, id)
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
