package professionals

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/professionals"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidProfessional = "ID de profissional inválido"
	msgInvalidActiveFilter = "filtro active inválido"
	msgNotFound            = "profissional não encontrado"
	msgInvalidImage        = "imagem inválida ou muito grande"
	msgUploadFailed        = "falha ao enviar a imagem, tente novamente"
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/professionals?active=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive, err := handlers.QueryBool(r, "active", false)
	if err != nil {
		h.logger.Warn("GET /professionals - Invalid active filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActiveFilter)
		return
	}

	list, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /professionals - Failed to list professionals: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/professionals/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "GET /professionals/{id}")
	if !ok {
		return
	}

	professional, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /professionals/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, professional)
}

// Create POST /api/v1/professionals
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	professional, err := req.ToDomain(0)
	if err != nil {
		h.logger.Warn("POST /professionals - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	created, err := h.service.Create(r.Context(), professional)
	if err != nil {
		h.logger.Error("POST /professionals - Failed to create professional: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /professionals - Professional created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// Update PUT /api/v1/professionals/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /professionals/{id}")
	if !ok {
		return
	}

	var req ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	professional, err := req.ToDomain(id)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id} - Validation failed: id=%d, %v", id, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	updated, err := h.service.Update(r.Context(), professional)
	if err != nil {
		h.respondServiceError(w, "PUT /professionals/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// ToggleActive PATCH /api/v1/professionals/{id}/toggle-active
func (h *Handler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PATCH /professionals/{id}/toggle-active")
	if !ok {
		return
	}

	updated, err := h.service.ToggleActive(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "PATCH /professionals/{id}/toggle-active", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// UploadAvatar PUT /api/v1/professionals/{id}/avatar
// Тело запроса содержит само изображение, тип берется из Content-Type
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /professionals/{id}/avatar")
	if !ok {
		return
	}

	data, contentType, err := handlers.ReadUpload(r)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/avatar - Invalid upload: id=%d, %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}

	updated, err := h.service.UploadAvatar(r.Context(), id, contentType, data)
	if err != nil {
		h.respondServiceError(w, "PUT /professionals/{id}/avatar", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// Delete DELETE /api/v1/professionals/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "DELETE /professionals/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /professionals/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /professionals/{id} - Professional deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid professional ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidProfessional)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, professionals.ErrProfessionalNotFound):
		h.logger.Warn("%s - Professional not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, professionals.ErrInvalidImage):
		h.logger.Warn("%s - Invalid image: id=%d, %v", route, id, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
	case errors.Is(err, professionals.ErrUploadFailed):
		h.logger.Error("%s - Upload failed: id=%d, %v", route, id, err)
		handlers.RespondBadGateway(w, msgUploadFailed)
	default:
		h.logger.Error("%s - Service error: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
