package move_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// Исходы переноса для метрик
const (
	OutcomeMoved    = "moved"
	OutcomeNoop     = "noop"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// Request модель запроса на перенос (окончание drag-and-drop)
type Request struct {
	Date          time.Time // Дата отображаемой сетки
	AppointmentID int64     // ID перетаскиваемой записи
	DroppableID   string    // Ключ ячейки "{мастер}-{HH:MM}"
}

// Response модель ответа
type Response struct {
	Appointment domain.Appointment
	From        domain.Placement
	Moved       bool // false, если запись бросили в ее же ячейку
}
