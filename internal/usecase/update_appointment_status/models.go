package update_appointment_status

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// Request модель запроса смены статуса
type Request struct {
	Date          time.Time // Дата отображаемой сетки
	AppointmentID int64
	Status        string // Значение из селектора статуса
}

// Response модель ответа
type Response struct {
	Appointment    domain.Appointment
	PreviousStatus domain.AppointmentStatus
}
