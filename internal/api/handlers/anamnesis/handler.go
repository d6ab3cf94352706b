package anamnesis

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/anamnesis"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/anamnesis/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidTemplateID  = "ID de modelo inválido"
	msgInvalidClientID    = "ID de cliente inválido"
	msgTemplateNotFound   = "modelo de anamnese não encontrado"
	msgClientNotFound     = "cliente não encontrado"
	msgInvalidTemplate    = "campos do modelo inválidos"
	msgInvalidAnswers     = "respostas não conferem com o modelo"
)

type Handler struct {
	service AnamnesisService
	logger  Logger
}

func NewHandler(service AnamnesisService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListTemplates GET /api/v1/anamnesis/templates
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListTemplates(r.Context())
	if err != nil {
		h.respondServiceError(w, "GET /anamnesis/templates", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// GetTemplate GET /api/v1/anamnesis/templates/{id}
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /anamnesis/templates/{id} - Invalid template ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	t, err := h.service.GetTemplate(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /anamnesis/templates/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, t)
}

// CreateTemplate POST /api/v1/anamnesis/templates
func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /anamnesis/templates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	t, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /anamnesis/templates - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	created, err := h.service.CreateTemplate(r.Context(), t)
	if err != nil {
		h.respondServiceError(w, "POST /anamnesis/templates", err)
		return
	}

	h.logger.Info("POST /anamnesis/templates - Template created: id=%d, fields=%d", created.ID, len(created.Fields))
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// SubmitResponse POST /api/v1/anamnesis/responses
func (h *Handler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResponseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /anamnesis/responses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.TemplateID <= 0 || req.ClientID <= 0 {
		h.logger.Warn("POST /anamnesis/responses - Missing ids: template=%d, client=%d", req.TemplateID, req.ClientID)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.SubmitResponse(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /anamnesis/responses", err)
		return
	}

	h.logger.Info("POST /anamnesis/responses - Response saved: id=%d, client=%d", saved.ID, saved.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, saved)
}

// ListClientResponses GET /api/v1/clients/{id}/anamnesis
func (h *Handler) ListClientResponses(w http.ResponseWriter, r *http.Request) {
	clientID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /clients/{id}/anamnesis - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	list, err := h.service.ListClientResponses(r.Context(), clientID)
	if err != nil {
		h.respondServiceError(w, "GET /clients/{id}/anamnesis", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, anamnesis.ErrTemplateNotFound):
		h.logger.Warn("%s - Template not found: %v", route, err)
		handlers.RespondNotFound(w, msgTemplateNotFound)
	case errors.Is(err, anamnesis.ErrClientNotFound):
		h.logger.Warn("%s - Client not found: %v", route, err)
		handlers.RespondNotFound(w, msgClientNotFound)
	case errors.Is(err, anamnesis.ErrInvalidTemplate):
		h.logger.Warn("%s - Invalid template: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidTemplate)
	case errors.Is(err, anamnesis.ErrInvalidAnswers):
		h.logger.Warn("%s - Invalid answers: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidAnswers)
	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
