package update_appointment_status

import (
	"github.com/m04kA/SMC-SalonAgenda/internal/service/appointments/models"
	updateStatus "github.com/m04kA/SMC-SalonAgenda/internal/usecase/update_appointment_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Date   string `json:"date"` // "2026-03-10"
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Appointment    *models.AppointmentResponse `json:"appointment"`
	PreviousStatus string                      `json:"previousStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		Appointment:    models.FromDomainAppointment(&resp.Appointment),
		PreviousStatus: string(resp.PreviousStatus),
	}
}
