package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// ProfessionalResponse ответ с данными мастера
type ProfessionalResponse struct {
	ID        int64     `json:"id"`
	UserID    *int64    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Specialty *string   `json:"specialty,omitempty"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfessionalListResponse ответ со списком мастеров
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}

// FromDomainProfessional конвертирует domain модель в response
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	resp := &ProfessionalResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Email:     p.Email,
		Specialty: p.Specialty,
		AvatarURL: p.AvatarURL,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Phone != nil {
		formatted := validation.FormatPhone(*p.Phone)
		resp.Phone = &formatted
	}
	return resp
}

// FromDomainProfessionalList конвертирует список domain моделей в response
func FromDomainProfessionalList(list []*domain.Professional) *ProfessionalListResponse {
	items := make([]ProfessionalResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *FromDomainProfessional(p))
	}
	return &ProfessionalListResponse{Professionals: items, Total: len(items)}
}
