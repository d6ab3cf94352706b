package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// ListRequest запрос списка операций
type ListRequest struct {
	From *time.Time // Начало периода включительно (опционально)
	To   *time.Time // Конец периода включительно (опционально)
	Type *string    // income или expense (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.FinancialEntriesFilter, error) {
	filter := domain.FinancialEntriesFilter{From: r.From, To: r.To}
	if r.Type != nil {
		t, err := domain.ParseEntryType(*r.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = &t
	}
	return filter, nil
}

// EntryResponse ответ с данными операции
type EntryResponse struct {
	ID            int64     `json:"id"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	Category      *string   `json:"category,omitempty"`
	Amount        float64   `json:"amount"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	EntryDate     string    `json:"entryDate"` // "2026-03-10"
	AppointmentID *int64    `json:"appointmentId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EntryListResponse ответ со списком операций
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
}

// SummaryResponse итоги за период
type SummaryResponse struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
	EntriesCount int     `json:"entriesCount"`
}

// FromDomainEntry конвертирует domain модель в response
func FromDomainEntry(e *domain.FinancialEntry) *EntryResponse {
	return &EntryResponse{
		ID:            e.ID,
		Type:          string(e.Type),
		Description:   e.Description,
		Category:      e.Category,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		EntryDate:     e.EntryDate.Format(domain.DateFormat),
		AppointmentID: e.AppointmentID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// FromDomainEntryList конвертирует список domain моделей в response
func FromDomainEntryList(list []*domain.FinancialEntry) *EntryListResponse {
	items := make([]EntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *FromDomainEntry(e))
	}
	return &EntryListResponse{Entries: items, Total: len(items)}
}

// FromDomainSummary конвертирует итоги в response
func FromDomainSummary(s domain.FinancialSummary) *SummaryResponse {
	return &SummaryResponse{
		From:         s.From.Format(domain.DateFormat),
		To:           s.To.Format(domain.DateFormat),
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Balance:      s.Balance,
		EntriesCount: s.EntriesCount,
	}
}
