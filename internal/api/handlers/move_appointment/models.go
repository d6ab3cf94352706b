package move_appointment

import (
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/appointments/models"
	moveAppointment "github.com/m04kA/SMC-SalonAgenda/internal/usecase/move_appointment"
)

// MoveAppointmentRequest HTTP request model: результат drop на ячейку сетки
type MoveAppointmentRequest struct {
	Date        string `json:"date"`        // "2026-03-10"
	DroppableID string `json:"droppableId"` // "Ana-10:30"
}

// MoveAppointmentResponse HTTP response model
type MoveAppointmentResponse struct {
	Appointment *models.AppointmentResponse `json:"appointment"`
	FromCell    string                      `json:"fromDroppableId"`
	Moved       bool                        `json:"moved"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveAppointment.Response) *MoveAppointmentResponse {
	return &MoveAppointmentResponse{
		Appointment: models.FromDomainAppointment(&resp.Appointment),
		FromCell:    domain.NewCellKey(resp.From.ProfessionalName, resp.From.Time).String(),
		Moved:       resp.Moved,
	}
}
