package products

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/products"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidProductID    = "ID de produto inválido"
	msgInvalidActiveFilter = "filtro active inválido"
	msgNotFound            = "produto não encontrado"
	msgInvalidImage        = "imagem inválida ou muito grande"
	msgUploadFailed        = "falha ao enviar a imagem, tente novamente"
)

type Handler struct {
	service ProductService
	logger  Logger
}

func NewHandler(service ProductService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/products?active=true
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	onlyActive, err := handlers.QueryBool(r, "active", false)
	if err != nil {
		h.logger.Warn("GET /products - Invalid active filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActiveFilter)
		return
	}

	list, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /products - Failed to list products: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/products/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "GET /products/{id}")
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /products/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, product)
}

// Create POST /api/v1/products
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /products - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	product, err := req.ToDomain(0)
	if err != nil {
		h.logger.Warn("POST /products - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	created, err := h.service.Create(r.Context(), product)
	if err != nil {
		h.logger.Error("POST /products - Failed to create product: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /products - Product created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// Update PUT /api/v1/products/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /products/{id}")
	if !ok {
		return
	}

	var req ProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /products/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	product, err := req.ToDomain(id)
	if err != nil {
		h.logger.Warn("PUT /products/{id} - Validation failed: id=%d, %v", id, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	updated, err := h.service.Update(r.Context(), product)
	if err != nil {
		h.respondServiceError(w, "PUT /products/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// ToggleActive PATCH /api/v1/products/{id}/toggle-active
func (h *Handler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PATCH /products/{id}/toggle-active")
	if !ok {
		return
	}

	updated, err := h.service.ToggleActive(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "PATCH /products/{id}/toggle-active", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// UploadImage PUT /api/v1/products/{id}/image
// Тело запроса содержит само изображение, тип берется из Content-Type
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /products/{id}/image")
	if !ok {
		return
	}

	data, contentType, err := handlers.ReadUpload(r)
	if err != nil {
		h.logger.Warn("PUT /products/{id}/image - Invalid upload: id=%d, %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}

	updated, err := h.service.UploadImage(r.Context(), id, contentType, data)
	if err != nil {
		h.respondServiceError(w, "PUT /products/{id}/image", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// Delete DELETE /api/v1/products/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "DELETE /products/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /products/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /products/{id} - Product deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid product ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, products.ErrProductNotFound):
		h.logger.Warn("%s - Product not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, products.ErrInvalidImage):
		h.logger.Warn("%s - Invalid image: id=%d, %v", route, id, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
	case errors.Is(err, products.ErrUploadFailed):
		h.logger.Error("%s - Upload failed: id=%d, %v", route, id, err)
		handlers.RespondBadGateway(w, msgUploadFailed)
	default:
		h.logger.Error("%s - Service error: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
