package catalog

import (
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// maxDurationMinutes предел длительности услуги (12 часов)
const maxDurationMinutes = 12 * 60

// ServiceRequest HTTP request model
type ServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	IsActive        *bool   `json:"isActive,omitempty"` // по умолчанию true
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *ServiceRequest) ToDomain(id int64) (*domain.CatalogService, error) {
	name, err := validation.RequireText(r.Name, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("name", err)
	}
	description, err := validation.OptionalText(r.Description, domain.MaxDescriptionLength)
	if err != nil {
		return nil, validation.Field("description", err)
	}
	if r.Price < 0 {
		return nil, validation.Field("price", validation.ErrInvalidValue)
	}
	if r.DurationMinutes <= 0 || r.DurationMinutes > maxDurationMinutes {
		return nil, validation.Field("durationMinutes", validation.ErrInvalidValue)
	}

	s := &domain.CatalogService{
		ID:              id,
		Name:            name,
		Description:     description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		IsActive:        true,
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
	return s, nil
}
