package catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/catalog"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidServiceID    = "ID de serviço inválido"
	msgInvalidActiveFilter = "filtro active inválido"
	msgNotFound            = "serviço não encontrado"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/services?active=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive, err := handlers.QueryBool(r, "active", false)
	if err != nil {
		h.logger.Warn("GET /services - Invalid active filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActiveFilter)
		return
	}

	list, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/services/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "GET /services/{id}")
	if !ok {
		return
	}

	service, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /services/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, service)
}

// Create POST /api/v1/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := req.ToDomain(0)
	if err != nil {
		h.logger.Warn("POST /services - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	created, err := h.service.Create(r.Context(), service)
	if err != nil {
		h.logger.Error("POST /services - Failed to create service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services - Service created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// Update PUT /api/v1/services/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /services/{id}")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := req.ToDomain(id)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Validation failed: id=%d, %v", id, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	updated, err := h.service.Update(r.Context(), service)
	if err != nil {
		h.respondServiceError(w, "PUT /services/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// ToggleActive PATCH /api/v1/services/{id}/toggle-active
func (h *Handler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PATCH /services/{id}/toggle-active")
	if !ok {
		return
	}

	updated, err := h.service.ToggleActive(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "PATCH /services/{id}/toggle-active", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// Delete DELETE /api/v1/services/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "DELETE /services/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /services/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid service ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)
	default:
		h.logger.Error("%s - Service error: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
