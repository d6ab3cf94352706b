package models

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// ListByDateRequest запрос списка записей на дату
type ListByDateRequest struct {
	Date             time.Time
	ProfessionalName *string // Фильтр по мастеру (опционально)
	Status           *string // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListByDateRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Date:             domain.DateOnly(r.Date),
		ProfessionalName: r.ProfessionalName,
	}
	if r.Status != nil {
		status, err := domain.ParseAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID               int64     `json:"id"`
	ClientID         *int64    `json:"clientId,omitempty"`
	ClientName       string    `json:"clientName"`
	ServiceID        *int64    `json:"serviceId,omitempty"`
	ServiceName      string    `json:"serviceName"`
	ProfessionalName string    `json:"professionalName"`
	Date             string    `json:"date"` // "2026-03-10"
	Time             string    `json:"time"` // "10:30"
	Status           string    `json:"status"`
	StatusLabel      string    `json:"statusLabel"`
	StatusColor      string    `json:"statusColor"`
	Cell             string    `json:"droppableId"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               a.ID,
		ClientID:         a.ClientID,
		ClientName:       a.ClientName,
		ServiceID:        a.ServiceID,
		ServiceName:      a.ServiceName,
		ProfessionalName: a.ProfessionalName,
		Date:             a.Date.Format(domain.DateFormat),
		Time:             a.Time.String(),
		Status:           string(a.Status),
		StatusLabel:      domain.StatusLabel(a.Status),
		StatusColor:      domain.StatusColor(string(a.Status)),
		Cell:             a.Cell().String(),
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	items := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: items, Total: len(items)}
}
