package products

import (
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// ProductRequest HTTP request model
type ProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	IsActive    *bool   `json:"isActive,omitempty"` // по умолчанию true
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *ProductRequest) ToDomain(id int64) (*domain.Product, error) {
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
	if r.Stock < 0 {
		return nil, validation.Field("stock", validation.ErrInvalidValue)
	}

	p := &domain.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       r.Price,
		Stock:       r.Stock,
		IsActive:    true,
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return p, nil
}
