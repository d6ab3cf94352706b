package finance

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	financeRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/finance"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/finance/models"
	"github.com/m04kA/SMC-SalonAgenda/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	entries    []*domain.FinancialEntry
	lastFilter domain.FinancialEntriesFilter
}

func (f *fakeRepo) GetAll(_ context.Context, filter domain.FinancialEntriesFilter) ([]*domain.FinancialEntry, error) {
	f.lastFilter = filter
	return f.entries, nil
}

func (f *fakeRepo) GetByPeriod(_ context.Context, from, to time.Time) ([]*domain.FinancialEntry, error) {
	var out []*domain.FinancialEntry
	for _, e := range f.entries {
		if !e.EntryDate.Before(from) && !e.EntryDate.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.FinancialEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, financeRepo.ErrEntryNotFound
}

func (f *fakeRepo) Create(_ context.Context, e *domain.FinancialEntry) (*domain.FinancialEntry, error) {
	e.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeRepo) Update(ctx context.Context, e *domain.FinancialEntry) (*domain.FinancialEntry, error) {
	if _, err := f.GetByID(ctx, e.ID); err != nil {
		return nil, err
	}
	return e, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	_, err := f.GetByID(ctx, id)
	return err
}

func date(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func sampleRepo() *fakeRepo {
	return &fakeRepo{entries: []*domain.FinancialEntry{
		{ID: 1, Type: domain.EntryIncome, Description: "Corte", Amount: 80, EntryDate: date(2), AppointmentID: ptr.Ptr(int64(5))},
		{ID: 2, Type: domain.EntryIncome, Description: "Escova; finalização", Amount: 120.5, EntryDate: date(3), PaymentMethod: ptr.Ptr("pix")},
		{ID: 3, Type: domain.EntryExpense, Description: "Produtos", Category: ptr.Ptr("estoque"), Amount: 50, EntryDate: date(20)},
	}}
}

func TestSummary(t *testing.T) {
	svc := NewService(sampleRepo(), nopLogger{})

	resp, err := svc.Summary(context.Background(), date(1), date(31))
	require.NoError(t, err)
	assert.Equal(t, 200.5, resp.TotalIncome)
	assert.Equal(t, 50.0, resp.TotalExpense)
	assert.Equal(t, 150.5, resp.Balance)
	assert.Equal(t, 3, resp.EntriesCount)

	resp, err = svc.Summary(context.Background(), date(1), date(10))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.EntriesCount)
	assert.Equal(t, 0.0, resp.TotalExpense)

	_, err = svc.Summary(context.Background(), date(10), date(1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExportCSV(t *testing.T) {
	svc := NewService(sampleRepo(), nopLogger{})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &models.ListRequest{}, &buf))

	want := "data;tipo;descricao;categoria;valor;forma_pagamento;agendamento\n" +
		"2026-03-02;income;Corte;;80.00;;5\n" +
		"2026-03-03;income;\"Escova; finalização\";;120.50;pix;\n" +
		"2026-03-20;expense;Produtos;estoque;50.00;;\n"
	assert.Equal(t, want, buf.String())
}

func TestList_TypeFilter(t *testing.T) {
	repo := sampleRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRequest{Type: ptr.Ptr("expense")})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Type)
	assert.Equal(t, domain.EntryExpense, *repo.lastFilter.Type)

	_, err = svc.List(context.Background(), &models.ListRequest{Type: ptr.Ptr("refund")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNotFound(t *testing.T) {
	svc := NewService(sampleRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrEntryNotFound)
}
