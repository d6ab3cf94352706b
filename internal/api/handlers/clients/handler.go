package clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/clients"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidClientID    = "ID de cliente inválido"
	msgNotFound           = "cliente não encontrado"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/clients?search=maria
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/clients/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "GET /clients/{id}")
	if !ok {
		return
	}

	client, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /clients/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, client)
}

// Create POST /api/v1/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := req.ToDomain(0)
	if err != nil {
		h.logger.Warn("POST /clients - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	created, err := h.service.Create(r.Context(), client)
	if err != nil {
		h.logger.Error("POST /clients - Failed to create client: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /clients - Client created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// Update PUT /api/v1/clients/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /clients/{id}")
	if !ok {
		return
	}

	var req ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := req.ToDomain(id)
	if err != nil {
		h.logger.Warn("PUT /clients/{id} - Validation failed: id=%d, %v", id, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	updated, err := h.service.Update(r.Context(), client)
	if err != nil {
		h.respondServiceError(w, "PUT /clients/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// Delete DELETE /api/v1/clients/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "DELETE /clients/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /clients/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid client ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, clients.ErrClientNotFound):
		h.logger.Warn("%s - Client not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)
	default:
		h.logger.Error("%s - Service error: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
