package finance

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/finance/models"
)

type FinanceService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.EntryListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.EntryResponse, error)
	Create(ctx context.Context, entry *domain.FinancialEntry) (*models.EntryResponse, error)
	Update(ctx context.Context, entry *domain.FinancialEntry) (*models.EntryResponse, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, from, to time.Time) (*models.SummaryResponse, error)
	ExportCSV(ctx context.Context, req *models.ListRequest, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
