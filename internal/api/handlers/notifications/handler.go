package notifications

import (
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAgenda/internal/notify"
)

// NotificationsResponse HTTP response model
type NotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

type Handler struct {
	center NotificationCenter
}

func NewHandler(center NotificationCenter) *Handler {
	return &Handler{center: center}
}

// List GET /api/v1/notifications
func (h *Handler) List(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, NotificationsResponse{
		Notifications: h.center.List(),
		Unread:        h.center.Unread(),
	})
}

// MarkRead POST /api/v1/notifications/read
func (h *Handler) MarkRead(w http.ResponseWriter, _ *http.Request) {
	h.center.MarkAllRead()
	handlers.RespondNoContent(w)
}

// Clear DELETE /api/v1/notifications
func (h *Handler) Clear(w http.ResponseWriter, _ *http.Request) {
	h.center.Clear()
	handlers.RespondNoContent(w)
}
