package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// ClientResponse ответ с данными клиента; CPF и телефон отформатированы для отображения
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CPF       *string   `json:"cpf,omitempty"`   // "123.456.789-09"
	Phone     *string   `json:"phone,omitempty"` // "(11) 98765-4321"
	Email     *string   `json:"email,omitempty"`
	BirthDate *string   `json:"birthDate,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// FromDomainClient конвертирует domain модель в response
func FromDomainClient(c *domain.Client) *ClientResponse {
	resp := &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.CPF != nil {
		formatted := validation.FormatCPF(*c.CPF)
		resp.CPF = &formatted
	}
	if c.Phone != nil {
		formatted := validation.FormatPhone(*c.Phone)
		resp.Phone = &formatted
	}
	if c.BirthDate != nil {
		formatted := c.BirthDate.Format(domain.DateFormat)
		resp.BirthDate = &formatted
	}
	return resp
}

// FromDomainClientList конвертирует список domain моделей в response
func FromDomainClientList(list []*domain.Client) *ClientListResponse {
	items := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *FromDomainClient(c))
	}
	return &ClientListResponse{Clients: items, Total: len(items)}
}
