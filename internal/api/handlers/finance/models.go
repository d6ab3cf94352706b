package finance

import (
	"math"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/finance/models"
	"github.com/m04kA/SMC-SalonAgenda/internal/validation"
)

// EntryRequest HTTP request model
type EntryRequest struct {
	Type          string  `json:"type"` // income | expense
	Description   string  `json:"description"`
	Category      *string `json:"category,omitempty"`
	Amount        float64 `json:"amount"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	EntryDate     string  `json:"entryDate"` // "2026-03-10"
	AppointmentID *int64  `json:"appointmentId,omitempty"`
}

// ToDomain валидирует запрос и конвертирует его в domain модель
func (r *EntryRequest) ToDomain(id int64) (*domain.FinancialEntry, error) {
	entryType, err := domain.ParseEntryType(r.Type)
	if err != nil {
		return nil, validation.Field("type", validation.ErrInvalidValue)
	}
	description, err := validation.RequireText(r.Description, domain.MaxDescriptionLength)
	if err != nil {
		return nil, validation.Field("description", err)
	}
	category, err := validation.OptionalText(r.Category, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("category", err)
	}
	paymentMethod, err := validation.OptionalText(r.PaymentMethod, domain.MaxNameLength)
	if err != nil {
		return nil, validation.Field("paymentMethod", err)
	}
	if r.Amount <= 0 || math.IsInf(r.Amount, 0) || math.IsNaN(r.Amount) {
		return nil, validation.Field("amount", validation.ErrInvalidValue)
	}
	date, err := handlers.ParseDate(r.EntryDate)
	if err != nil {
		return nil, validation.Field("entryDate", validation.ErrInvalidDate)
	}
	if r.AppointmentID != nil && *r.AppointmentID <= 0 {
		return nil, validation.Field("appointmentId", validation.ErrInvalidValue)
	}

	return &domain.FinancialEntry{
		ID:            id,
		Type:          entryType,
		Description:   description,
		Category:      category,
		Amount:        math.Round(r.Amount*100) / 100,
		PaymentMethod: paymentMethod,
		EntryDate:     date,
		AppointmentID: r.AppointmentID,
	}, nil
}

// listRequestFromQuery разбирает ?from=&to=&type=
func listRequestFromQuery(r *http.Request) (*models.ListRequest, error) {
	req := &models.ListRequest{Type: handlers.QueryString(r, "type")}

	if raw := handlers.QueryString(r, "from"); raw != nil {
		from, err := handlers.ParseDate(*raw)
		if err != nil {
			return nil, validation.Field("from", validation.ErrInvalidDate)
		}
		req.From = &from
	}
	if raw := handlers.QueryString(r, "to"); raw != nil {
		to, err := handlers.ParseDate(*raw)
		if err != nil {
			return nil, validation.Field("to", validation.ErrInvalidDate)
		}
		req.To = &to
	}
	return req, nil
}

// periodFromQuery разбирает период для итогов; по умолчанию текущий месяц
func periodFromQuery(r *http.Request, now time.Time) (time.Time, time.Time, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if raw := handlers.QueryString(r, "from"); raw != nil {
		t, err := handlers.ParseDate(*raw)
		if err != nil {
			return time.Time{}, time.Time{}, validation.Field("from", validation.ErrInvalidDate)
		}
		from = t
	}
	if raw := handlers.QueryString(r, "to"); raw != nil {
		t, err := handlers.ParseDate(*raw)
		if err != nil {
			return time.Time{}, time.Time{}, validation.Field("to", validation.ErrInvalidDate)
		}
		to = t
	}
	return from, to, nil
}
