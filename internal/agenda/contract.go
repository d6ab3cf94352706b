package agenda

import (
	"context"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// SnapshotStore локальное зеркало списка записей
type SnapshotStore interface {
	Save(ctx context.Context, appointments []domain.Appointment) error
	Load(ctx context.Context) ([]domain.Appointment, error)
}

// Metrics счетчики доски
type Metrics interface {
	ObserveSnapshotError()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
