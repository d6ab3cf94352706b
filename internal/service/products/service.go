package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	productRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/product"
	"github.com/m04kA/SMC-SalonAgenda/internal/integrations/objectstorage"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/products/models"
)

// Service сервис товаров салона
type Service struct {
	productRepo ProductRepository
	uploader    ImageUploader
	logger      Logger
}

// NewService создает новый экземпляр сервиса товаров
func NewService(productRepo ProductRepository, uploader ImageUploader, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		uploader:    uploader,
		logger:      logger,
	}
}

// List возвращает товары
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.ProductListResponse, error) {
	list, err := s.productRepo.GetAll(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProductList(list), nil
}

// GetByID получает товар по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProductResponse, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainProduct(p), nil
}

// Create создает товар
func (s *Service) Create(ctx context.Context, product *domain.Product) (*models.ProductResponse, error) {
	s.logger.Info("Create: creating product name=%q", product.Name)

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProduct(created), nil
}

// Update обновляет товар
func (s *Service) Update(ctx context.Context, product *domain.Product) (*models.ProductResponse, error) {
	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		return nil, s.mapError("Update", product.ID, err)
	}
	return models.FromDomainProduct(updated), nil
}

// ToggleActive меняет видимость товара
func (s *Service) ToggleActive(ctx context.Context, id int64) (*models.ProductResponse, error) {
	current, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("ToggleActive", id, err)
	}
	updated, err := s.productRepo.SetActive(ctx, id, !current.IsActive)
	if err != nil {
		return nil, s.mapError("ToggleActive", id, err)
	}
	return models.FromDomainProduct(updated), nil
}

// UploadImage загружает фото товара и сохраняет ссылку на него
func (s *Service) UploadImage(ctx context.Context, id int64, contentType string, data []byte) (*models.ProductResponse, error) {
	s.logger.Info("UploadImage: product id=%d, %d bytes", id, len(data))

	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return nil, s.mapError("UploadImage", id, err)
	}

	url, err := s.uploader.Upload(ctx, objectstorage.Object{
		Bucket:      objectstorage.BucketProducts,
		Prefix:      fmt.Sprintf("%d", id),
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, objectstorage.ErrPayloadTooLarge) || errors.Is(err, objectstorage.ErrUnsupportedType) {
			s.logger.Warn("UploadImage: rejected image for product id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		s.logger.Error("UploadImage: storage error for product id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	updated, err := s.productRepo.SetImageURL(ctx, id, url)
	if err != nil {
		return nil, s.mapError("UploadImage", id, err)
	}
	return models.FromDomainProduct(updated), nil
}

// Delete удаляет товар
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting product id=%d", id)

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, productRepo.ErrProductNotFound) {
		s.logger.Warn("%s: product id=%d not found", op, id)
		return ErrProductNotFound
	}
	s.logger.Error("%s: repository error for product id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
