package finance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAgenda/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const table = "financial_entries"

var columns = []string{
	"id",
	"type",
	"description",
	"category",
	"amount",
	"payment_method",
	"entry_date",
	"appointment_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий финансовых операций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория финансовых операций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает операции по фильтру, новые первыми
func (r *Repository) GetAll(ctx context.Context, filter domain.FinancialEntriesFilter) ([]*domain.FinancialEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"entry_date": domain.DateOnly(*filter.From)})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"entry_date": domain.DateOnly(*filter.To)})
	}
	if filter.Type != nil {
		builder = builder.Where(squirrel.Eq{"type": *filter.Type})
	}
	builder = builder.OrderBy("entry_date DESC", "id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	list := make([]*domain.FinancialEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return list, nil
}

// GetByPeriod возвращает операции за период [from, to]
func (r *Repository) GetByPeriod(ctx context.Context, from, to time.Time) ([]*domain.FinancialEntry, error) {
	return r.GetAll(ctx, domain.FinancialEntriesFilter{From: &from, To: &to})
}

// GetByID получает операцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.FinancialEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	return e, nil
}

// Create создает операцию
func (r *Repository) Create(ctx context.Context, e *domain.FinancialEntry) (*domain.FinancialEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("type", "description", "category", "amount", "payment_method", "entry_date", "appointment_id").
		Values(e.Type, e.Description, e.Category, e.Amount, e.PaymentMethod, domain.DateOnly(e.EntryDate), e.AppointmentID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return e, nil
}

// Update обновляет операцию
func (r *Repository) Update(ctx context.Context, e *domain.FinancialEntry) (*domain.FinancialEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("type", e.Type).
		Set("description", e.Description).
		Set("category", e.Category).
		Set("amount", e.Amount).
		Set("payment_method", e.PaymentMethod).
		Set("entry_date", domain.DateOnly(e.EntryDate)).
		Set("appointment_id", e.AppointmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// Delete удаляет операцию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.FinancialEntry, error) {
	var e domain.FinancialEntry
	err := row.Scan(
		&e.ID,
		&e.Type,
		&e.Description,
		&e.Category,
		&e.Amount,
		&e.PaymentMethod,
		&e.EntryDate,
		&e.AppointmentID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.EntryDate = domain.DateOnly(e.EntryDate)
	return &e, nil
}
