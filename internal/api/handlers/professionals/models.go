package professionals

import (
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// ProfessionalRequest HTTP request model
type ProfessionalRequest struct {
	UserID    *int64  `json:"userId,omitempty"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"` // по умолчанию true
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *ProfessionalRequest) ToDomain(id int64) (*domain.Professional, error) {
	name, err := validation.RequireText(r.Name, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("name", err)
	}

	p := &domain.Professional{ID: id, UserID: r.UserID, Name: name, IsActive: true}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}

	email, err := validation.OptionalText(r.Email, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("email", err)
	}
	if email != nil {
		if err := validation.ValidateEmail(*email); err != nil {
			return nil, validation.Field("email", err)
		}
		p.Email = email
	}

	phone, err := validation.OptionalText(r.Phone, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("phone", err)
	}
	if phone != nil {
		if err := validation.ValidatePhone(*phone); err != nil {
			return nil, validation.Field("phone", err)
		}
		digits := validation.NormalizeDigits(*phone)
		p.Phone = &digits
	}

	specialty, err := validation.OptionalText(r.Specialty, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("specialty", err)
	}
	p.Specialty = specialty

	return p, nil
}
