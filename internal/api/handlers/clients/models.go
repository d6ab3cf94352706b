package clients

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// ClientRequest HTTP request model для создания и обновления клиента
type ClientRequest struct {
	Name      string  `json:"name"`
	CPF       *string `json:"cpf,omitempty"`   // "123.456.789-09" или только цифры
	Phone     *string `json:"phone,omitempty"` // "(11) 98765-4321" или только цифры
	Email     *string `json:"email,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"` // "1990-05-20"
	Notes     *string `json:"notes,omitempty"`
}

// ToDomain валидирует запрос и конвертирует его в domain модель
// Ошибка содержит имя поля, которое не прошло проверку
func (r *ClientRequest) ToDomain(id int64) (*domain.Client, error) {
	name, err := validation.RequireText(r.Name, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("name", err)
	}

	client := &domain.Client{ID: id, Name: name}

	if cpf := optional(r.CPF); cpf != nil {
		if err := validation.ValidateCPF(*cpf); err != nil {
			return nil, validation.Field("cpf", err)
		}
		digits := validation.NormalizeDigits(*cpf)
		client.CPF = &digits
	}

	if phone := optional(r.Phone); phone != nil {
		if err := validation.ValidatePhone(*phone); err != nil {
			return nil, validation.Field("phone", err)
		}
		digits := validation.NormalizeDigits(*phone)
		client.Phone = &digits
	}

	if email := optional(r.Email); email != nil {
		if err := validation.ValidateEmail(*email); err != nil {
			return nil, validation.Field("email", err)
		}
		client.Email = email
	}

	if birth := optional(r.BirthDate); birth != nil {
		t, err := time.Parse(domain.DateFormat, *birth)
		if err != nil || t.After(time.Now()) {
			return nil, validation.Field("birthDate", validation.ErrInvalidDate)
		}
		client.BirthDate = &t
	}

	notes, err := validation.OptionalText(r.Notes, domain.MaxNotesLength)
	if err != nil {
		return nil, validation.Field("notes", err)
	}
	client.Notes = notes

	return client, nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	clean := validation.Sanitize(*s)
	if clean == "" {
		return nil
	}
	return &clean
}
