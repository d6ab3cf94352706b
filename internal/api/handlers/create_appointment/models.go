package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonAgenda/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date             string  `json:"date"` // "2026-03-10"
	Time             string  `json:"time"` // "10:30"
	ProfessionalName string  `json:"professionalName"`
	ClientID         *int64  `json:"clientId,omitempty"`
	ClientName       string  `json:"clientName"`
	ServiceID        *int64  `json:"serviceId,omitempty"`
	ServiceName      string  `json:"serviceName"`
	Status           *string `json:"status,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createAppointment.Request{
		Date:             date,
		Time:             slot,
		ProfessionalName: r.ProfessionalName,
		ClientID:         r.ClientID,
		ClientName:       r.ClientName,
		ServiceID:        r.ServiceID,
		ServiceName:      r.ServiceName,
		Status:           r.Status,
		Notes:            r.Notes,
	}, nil
}
