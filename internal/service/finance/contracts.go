package finance

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// EntryRepository интерфейс репозитория финансовых операций
type EntryRepository interface {
	GetAll(ctx context.Context, filter domain.FinancialEntriesFilter) ([]*domain.FinancialEntry, error)
	GetByPeriod(ctx context.Context, from, to time.Time) ([]*domain.FinancialEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.FinancialEntry, error)
	Create(ctx context.Context, entry *domain.FinancialEntry) (*domain.FinancialEntry, error)
	Update(ctx context.Context, entry *domain.FinancialEntry) (*domain.FinancialEntry, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
