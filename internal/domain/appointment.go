package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

// ErrInvalidStatus возвращается для значения вне перечисления статусов
var ErrInvalidStatus = errors.New("domain: invalid appointment status")

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AllStatuses закрытое перечисление статусов в порядке отображения в селекторе
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
	StatusCancelled,
}

// ParseAppointmentStatus конвертирует строку в статус с валидацией
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// IsValid возвращает true, если статус входит в перечисление
func (s AppointmentStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Occupies возвращает true, если запись с этим статусом занимает ячейку сетки
// Отменённые и неявки ячейку освобождают
func (s AppointmentStatus) Occupies() bool {
	return s == StatusScheduled || s == StatusConfirmed || s == StatusCompleted
}

// Appointment запись клиента к мастеру
type Appointment struct {
	ID               int64             `json:"id"`
	ClientID         *int64            `json:"clientId,omitempty"`
	ClientName       string            `json:"clientName"`
	ServiceID        *int64            `json:"serviceId,omitempty"`
	ServiceName      string            `json:"serviceName"`
	ProfessionalName string            `json:"professionalName"`
	Date             time.Time         `json:"date"`
	Time             types.TimeString  `json:"time"`
	Status           AppointmentStatus `json:"status"`
	Notes            *string           `json:"notes,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// Placement возвращает текущее положение записи в сетке
func (a *Appointment) Placement() Placement {
	return Placement{ProfessionalName: a.ProfessionalName, Time: a.Time}
}

// Cell возвращает ключ ячейки, в которой находится запись
func (a *Appointment) Cell() CellKey {
	return NewCellKey(a.ProfessionalName, a.Time)
}

// Occupies возвращает true, если запись занимает свою ячейку
func (a *Appointment) Occupies() bool {
	return a.Status.Occupies()
}

// Placement мастер и слот времени, т.е. положение записи в сетке
type Placement struct {
	ProfessionalName string           `json:"professionalName"`
	Time             types.TimeString `json:"time"`
}

// Equal сравнивает положения
func (p Placement) Equal(other Placement) bool {
	return p.ProfessionalName == other.ProfessionalName && p.Time.Equal(other.Time)
}

// AppointmentsFilter фильтр выборки записей
type AppointmentsFilter struct {
	Date             time.Time
	ProfessionalName *string
	Status           *AppointmentStatus
}

// DateOnly обнуляет время суток, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
