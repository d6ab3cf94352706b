package agenda

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// Source источник списка записей на дату
type Source interface {
	GetByDate(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Load загружает список на дату из src через защиту поколений
// Возвращает false, если за время загрузки была начата более новая; тогда на доске остается ее результат
func (b *Board) Load(ctx context.Context, date time.Time, src Source) (bool, error) {
	gen := b.BeginLoad(date)

	list, err := src.GetByDate(ctx, domain.AppointmentsFilter{Date: domain.DateOnly(date)})
	if err != nil {
		return false, err
	}

	return b.CommitLoad(ctx, gen, list), nil
}

// EnsureLoaded загружает дату, если она еще не загружалась
func (b *Board) EnsureLoaded(ctx context.Context, date time.Time, src Source) error {
	if b.IsLoaded(date) {
		return nil
	}
	_, err := b.Load(ctx, date, src)
	return err
}

// IsLoaded возвращает true, если для даты был зафиксирован хотя бы один список
func (b *Board) IsLoaded(date time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.days[dateKey(date)]
	return ok && d.loaded
}
