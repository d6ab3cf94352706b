package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	profileRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/profile"
	"github.com/m04kA/SMC-SalonAgenda/internal/integrations/objectstorage"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/profile/models"
)

// Service сервис профиля текущего пользователя
type Service struct {
	profileRepo ProfileRepository
	uploader    ImageUploader
	logger      Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(profileRepo ProfileRepository, uploader ImageUploader, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		uploader:    uploader,
		logger:      logger,
	}
}

// Get возвращает профиль пользователя
func (s *Service) Get(ctx context.Context, userID int64) (*models.ProfileResponse, error) {
	p, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, s.mapError("Get", userID, err)
	}
	return models.FromDomainProfile(p), nil
}

// Update создает или обновляет профиль
func (s *Service) Update(ctx context.Context, profile *domain.Profile) (*models.ProfileResponse, error) {
	s.logger.Info("Update: saving profile for user=%d", profile.UserID)

	saved, err := s.profileRepo.Upsert(ctx, profile)
	if err != nil {
		s.logger.Error("Update: repository error for user=%d: %v", profile.UserID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfile(saved), nil
}

// UploadAvatar загружает аватар пользователя
func (s *Service) UploadAvatar(ctx context.Context, userID int64, contentType string, data []byte) (*models.ProfileResponse, error) {
	s.logger.Info("UploadAvatar: user=%d, %d bytes", userID, len(data))

	if _, err := s.profileRepo.GetByUserID(ctx, userID); err != nil {
		return nil, s.mapError("UploadAvatar", userID, err)
	}

	url, err := s.uploader.Upload(ctx, objectstorage.Object{
		Bucket:      objectstorage.BucketAvatars,
		Prefix:      fmt.Sprintf("users/%d", userID),
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, objectstorage.ErrPayloadTooLarge) || errors.Is(err, objectstorage.ErrUnsupportedType) {
			s.logger.Warn("UploadAvatar: rejected image for user=%d: %v", userID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		s.logger.Error("UploadAvatar: storage error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	updated, err := s.profileRepo.SetAvatarURL(ctx, userID, url)
	if err != nil {
		return nil, s.mapError("UploadAvatar", userID, err)
	}
	return models.FromDomainProfile(updated), nil
}

func (s *Service) mapError(op string, userID int64, err error) error {
	if errors.Is(err, profileRepo.ErrProfileNotFound) {
		s.logger.Warn("%s: profile for user=%d not found", op, userID)
		return ErrProfileNotFound
	}
	s.logger.Error("%s: repository error for user=%d: %v", op, userID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
