package profile

import (
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// ProfileRequest HTTP request model; роль меняется только администратором и здесь не принимается
type ProfileRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *ProfileRequest) ToDomain(userID int64) (*domain.Profile, error) {
	name, err := validation.RequireText(r.Name, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("name", err)
	}
	p := &domain.Profile{UserID: userID, Name: name}

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
	return p, nil
}
