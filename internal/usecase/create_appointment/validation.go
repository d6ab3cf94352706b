package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// validateRequest очищает поля запроса и собирает из них запись
// Имена клиента и услуги могут быть пустыми, если заданы их ID
func validateRequest(req *Request) (*domain.Appointment, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}

	professional, err := validation.RequireText(req.ProfessionalName, domain.MaxNameLength)
	if err != nil {
		return nil, fmt.Errorf("%w: professionalName: %v", ErrInvalidInput, err)
	}

	clientName, err := validation.RequireText(req.ClientName, domain.MaxNameLength)
	if err != nil && (req.ClientID == nil || !errors.Is(err, validation.ErrEmptyValue)) {
		return nil, fmt.Errorf("%w: clientName: %v", ErrInvalidInput, err)
	}

	serviceName, err := validation.RequireText(req.ServiceName, domain.MaxNameLength)
	if err != nil && (req.ServiceID == nil || !errors.Is(err, validation.ErrEmptyValue)) {
		return nil, fmt.Errorf("%w: serviceName: %v", ErrInvalidInput, err)
	}

	notes, err := validation.OptionalText(req.Notes, domain.MaxNotesLength)
	if err != nil {
		return nil, fmt.Errorf("%w: notes: %v", ErrInvalidInput, err)
	}

	status := domain.StatusScheduled
	if req.Status != nil {
		status, err = domain.ParseAppointmentStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: status %q", ErrInvalidInput, *req.Status)
		}
	}

	return &domain.Appointment{
		ClientID:         req.ClientID,
		ClientName:       clientName,
		ServiceID:        req.ServiceID,
		ServiceName:      serviceName,
		ProfessionalName: professional,
		Date:             domain.DateOnly(req.Date),
		Time:             req.Time,
		Status:           status,
		Notes:            notes,
	}, nil
}
