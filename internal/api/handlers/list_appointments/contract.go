package list_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/service/appointments/models"
)

type AppointmentService interface {
	ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
