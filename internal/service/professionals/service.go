package professionals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	professionalRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/professional"
	"github.com/m04kA/SMC-SalonAgenda/internal/integrations/objectstorage"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/professionals/models"
)

// Service сервис мастеров салона
// Активные мастера становятся колонками сетки расписания
type Service struct {
	professionalRepo ProfessionalRepository
	uploader         ImageUploader
	logger           Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(professionalRepo ProfessionalRepository, uploader ImageUploader, logger Logger) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		uploader:         uploader,
		logger:           logger,
	}
}

// List возвращает мастеров
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.ProfessionalListResponse, error) {
	list, err := s.professionalRepo.GetAll(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfessionalList(list), nil
}

// GetByID получает мастера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	p, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainProfessional(p), nil
}

// Create создает мастера
func (s *Service) Create(ctx context.Context, professional *domain.Professional) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: creating professional name=%q", professional.Name)

	created, err := s.professionalRepo.Create(ctx, professional)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfessional(created), nil
}

// Update обновляет мастера
// Переименование не переносит уже созданные записи: в сетке мастер определяется по имени
func (s *Service) Update(ctx context.Context, professional *domain.Professional) (*models.ProfessionalResponse, error) {
	s.logger.Info("Update: updating professional id=%d", professional.ID)

	updated, err := s.professionalRepo.Update(ctx, professional)
	if err != nil {
		return nil, s.mapError("Update", professional.ID, err)
	}
	return models.FromDomainProfessional(updated), nil
}

// ToggleActive включает или исключает мастера из сетки
func (s *Service) ToggleActive(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	current, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("ToggleActive", id, err)
	}

	updated, err := s.professionalRepo.SetActive(ctx, id, !current.IsActive)
	if err != nil {
		return nil, s.mapError("ToggleActive", id, err)
	}

	s.logger.Info("ToggleActive: professional id=%d active=%t", id, updated.IsActive)
	return models.FromDomainProfessional(updated), nil
}

// UploadAvatar загружает фото мастера и сохраняет ссылку на него
func (s *Service) UploadAvatar(ctx context.Context, id int64, contentType string, data []byte) (*models.ProfessionalResponse, error) {
	s.logger.Info("UploadAvatar: professional id=%d, %d bytes", id, len(data))

	if _, err := s.professionalRepo.GetByID(ctx, id); err != nil {
		return nil, s.mapError("UploadAvatar", id, err)
	}

	url, err := s.uploader.Upload(ctx, objectstorage.Object{
		Bucket:      objectstorage.BucketAvatars,
		Prefix:      fmt.Sprintf("professionals/%d", id),
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, objectstorage.ErrPayloadTooLarge) || errors.Is(err, objectstorage.ErrUnsupportedType) {
			s.logger.Warn("UploadAvatar: rejected image for professional id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		s.logger.Error("UploadAvatar: storage error for professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	updated, err := s.professionalRepo.SetAvatarURL(ctx, id, url)
	if err != nil {
		return nil, s.mapError("UploadAvatar", id, err)
	}
	return models.FromDomainProfessional(updated), nil
}

// Delete удаляет мастера
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting professional id=%d", id)

	if err := s.professionalRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
		s.logger.Warn("%s: professional id=%d not found", op, id)
		return ErrProfessionalNotFound
	}
	s.logger.Error("%s: repository error for professional id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
