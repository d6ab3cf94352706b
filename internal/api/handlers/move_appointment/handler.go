package move_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	moveAppointment "github.com/m04kA/SMC-SalonAgenda/internal/usecase/move_appointment"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidAppointmentID = "ID de agendamento inválido"
	msgInvalidDate          = "data inválida, use o formato AAAA-MM-DD"
	msgInvalidDropTarget    = "destino inválido na agenda"
	msgNotFound             = "agendamento não encontrado nesta data"
	msgCellOccupied         = "horário já ocupado para este profissional"
)

type Handler struct {
	useCase MoveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase MoveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/move - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req MoveAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := handlers.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/move - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &moveAppointment.Request{
		Date:          date,
		AppointmentID: appointmentID,
		DroppableID:   req.DroppableID,
	})
	if err != nil {
		switch {
		case errors.Is(err, moveAppointment.ErrInvalidInput), errors.Is(err, moveAppointment.ErrInvalidDropTarget):
			h.logger.Warn("PATCH /appointments/{id}/move - Invalid drop target: id=%d, droppable=%q", appointmentID, req.DroppableID)
			handlers.RespondBadRequest(w, msgInvalidDropTarget)

		case errors.Is(err, moveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/move - Appointment not found: id=%d, date=%s", appointmentID, req.Date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, moveAppointment.ErrCellOccupied):
			h.logger.Warn("PATCH /appointments/{id}/move - Cell occupied: id=%d, droppable=%q", appointmentID, req.DroppableID)
			handlers.RespondConflict(w, msgCellOccupied)

		default:
			h.logger.Error("PATCH /appointments/{id}/move - Failed to move appointment: id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
