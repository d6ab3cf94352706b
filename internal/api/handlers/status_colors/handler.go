package status_colors

import (
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/status-colors
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, agenda.StatusOptions())
}
