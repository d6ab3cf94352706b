package profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAgenda/internal/api/middleware"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/profile"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingUserID      = "usuário não autenticado"
	msgNotFound           = "perfil não encontrado"
	msgInvalidImage       = "imagem inválida ou muito grande"
	msgUploadFailed       = "falha ao enviar a imagem, tente novamente"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/profile
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "GET /profile")
	if !ok {
		return
	}

	p, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, "GET /profile", userID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, p)
}

// Update PUT /api/v1/profile
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "PUT /profile")
	if !ok {
		return
	}

	var req ProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	p, err := req.ToDomain(userID)
	if err != nil {
		h.logger.Warn("PUT /profile - Validation failed: user_id=%d, %v", userID, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	saved, err := h.service.Update(r.Context(), p)
	if err != nil {
		h.respondServiceError(w, "PUT /profile", userID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, saved)
}

// UploadAvatar PUT /api/v1/profile/avatar
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "PUT /profile/avatar")
	if !ok {
		return
	}

	data, contentType, err := handlers.ReadUpload(r)
	if err != nil {
		h.logger.Warn("PUT /profile/avatar - Invalid upload: user_id=%d, %v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}

	updated, err := h.service.UploadAvatar(r.Context(), userID, contentType, data)
	if err != nil {
		h.respondServiceError(w, "PUT /profile/avatar", userID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// userID достает ID пользователя, проставленный middleware Auth
func (h *Handler) userID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, false
	}
	return userID, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, userID int64, err error) {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		h.logger.Warn("%s - Profile not found: user_id=%d", route, userID)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, profile.ErrInvalidImage):
		h.logger.Warn("%s - Invalid image: user_id=%d, %v", route, userID, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
	case errors.Is(err, profile.ErrUploadFailed):
		h.logger.Error("%s - Upload failed: user_id=%d, %v", route, userID, err)
		handlers.RespondBadGateway(w, msgUploadFailed)
	default:
		h.logger.Error("%s - Service error: user_id=%d, error=%v", route, userID, err)
		handlers.RespondInternalError(w)
	}
}
