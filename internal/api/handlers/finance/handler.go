package finance

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/finance"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidEntryID     = "ID de lançamento inválido"
	msgInvalidFilter      = "filtro inválido"
	msgInvalidPeriod      = "período inválido"
	msgNotFound           = "lançamento não encontrado"
)

type Handler struct {
	service FinanceService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service FinanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// List GET /api/v1/financial-entries?from=2026-03-01&to=2026-03-31&type=income
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req, err := listRequestFromQuery(r)
	if err != nil {
		h.logger.Warn("GET /financial-entries - Invalid query: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /financial-entries", 0, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Get GET /api/v1/financial-entries/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "GET /financial-entries/{id}")
	if !ok {
		return
	}

	entry, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /financial-entries/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, entry)
}

// Create POST /api/v1/financial-entries
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /financial-entries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := req.ToDomain(0)
	if err != nil {
		h.logger.Warn("POST /financial-entries - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	created, err := h.service.Create(r.Context(), entry)
	if err != nil {
		h.respondServiceError(w, "POST /financial-entries", 0, err)
		return
	}

	h.logger.Info("POST /financial-entries - Entry created: id=%d, type=%s", created.ID, created.Type)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

// Update PUT /api/v1/financial-entries/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "PUT /financial-entries/{id}")
	if !ok {
		return
	}

	var req EntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /financial-entries/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := req.ToDomain(id)
	if err != nil {
		h.logger.Warn("PUT /financial-entries/{id} - Validation failed: id=%d, %v", id, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	updated, err := h.service.Update(r.Context(), entry)
	if err != nil {
		h.respondServiceError(w, "PUT /financial-entries/{id}", id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// Delete DELETE /api/v1/financial-entries/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "DELETE /financial-entries/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /financial-entries/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /financial-entries/{id} - Entry deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

// Summary GET /api/v1/financial-entries/summary?from=2026-03-01&to=2026-03-31
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	from, to, err := periodFromQuery(r, h.now())
	if err != nil {
		h.logger.Warn("GET /financial-entries/summary - Invalid period: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	summary, err := h.service.Summary(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidInput) {
			h.logger.Warn("GET /financial-entries/summary - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.respondServiceError(w, "GET /financial-entries/summary", 0, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, summary)
}

// ExportCSV GET /api/v1/financial-entries/export.csv?from=&to=&type=
// Файл собирается в буфере целиком; при ошибке отдается обычный JSON ответ
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req, err := listRequestFromQuery(r)
	if err != nil {
		h.logger.Warn("GET /financial-entries/export.csv - Invalid query: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(r.Context(), req, &buf); err != nil {
		h.respondServiceError(w, "GET /financial-entries/export.csv", 0, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="lancamentos.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid entry ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, finance.ErrEntryNotFound):
		h.logger.Warn("%s - Entry not found: id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, finance.ErrInvalidInput):
		h.logger.Warn("%s - Invalid filter: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
	default:
		h.logger.Error("%s - Service error: id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
