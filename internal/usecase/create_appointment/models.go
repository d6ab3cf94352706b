package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Date             time.Time
	Time             types.TimeString
	ProfessionalName string
	ClientID         *int64 // если задан, имя клиента берется из справочника
	ClientName       string
	ServiceID        *int64 // если задан, название услуги берется из каталога
	ServiceName      string
	Status           *string // по умолчанию scheduled
	Notes            *string
}

// Response модель ответа
type Response struct {
	Appointment *domain.Appointment
}
