package anamnesis

import (
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// TemplateRequest HTTP request model; структура полей проверяется сервисом
type TemplateRequest struct {
	Name        string                  `json:"name"`
	Description *string                 `json:"description,omitempty"`
	Fields      []domain.AnamnesisField `json:"fields"`
}

// ToDomain валидирует текстовые поля и конвертирует запрос в domain модель
func (r *TemplateRequest) ToDomain() (*domain.AnamnesisTemplate, error) {
	name, err := validation.RequireText(r.Name, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("name", err)
	}
	description, err := validation.OptionalText(r.Description, domain.MaxDescriptionLength)
	if err != nil {
		return nil, validation.Field("description", err)
	}
	return &domain.AnamnesisTemplate{Name: name, Description: description, Fields: r.Fields}, nil
}
