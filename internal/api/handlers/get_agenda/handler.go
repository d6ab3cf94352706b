package get_agenda

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	getAgenda "github.com/m04kA/SMC-SalonAgenda/internal/usecase/get_agenda"
)

const (
	msgInvalidDate = "data inválida, use o formato AAAA-MM-DD"
	msgInvalidView = "visualização inválida, use desktop ou mobile"
)

type Handler struct {
	useCase GetAgendaUseCase
	logger  Logger
}

func NewHandler(useCase GetAgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda?date=2026-03-10&view=desktop
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /agenda - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view := getAgenda.View(r.URL.Query().Get("view"))
	if view == "" {
		view = getAgenda.ViewDesktop
	}

	result, err := h.useCase.Execute(r.Context(), &getAgenda.Request{Date: date, View: view})
	if err != nil {
		switch {
		case errors.Is(err, getAgenda.ErrInvalidInput):
			h.logger.Warn("GET /agenda - Invalid view: view=%s", view)
			handlers.RespondBadRequest(w, msgInvalidView)
		default:
			h.logger.Error("GET /agenda - Failed to build agenda: date=%s, error=%v", r.URL.Query().Get("date"), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(view, result))
}
