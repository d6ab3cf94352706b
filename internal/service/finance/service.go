package finance

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	financeRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/finance"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/finance/models"
)

// Разделитель CSV, который без настройки открывает Excel с локалью pt-BR
const csvComma = ';'

var csvHeader = []string{"data", "tipo", "descricao", "categoria", "valor", "forma_pagamento", "agendamento"}

// Service сервис финансовых операций
type Service struct {
	entryRepo EntryRepository
	logger    Logger
}

// NewService создает новый экземпляр финансового сервиса
func NewService(entryRepo EntryRepository, logger Logger) *Service {
	return &Service{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

// List возвращает операции по фильтру
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.EntryListResponse, error) {
	list, err := s.list(ctx, "List", req)
	if err != nil {
		return nil, err
	}
	return models.FromDomainEntryList(list), nil
}

// GetByID получает операцию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EntryResponse, error) {
	e, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainEntry(e), nil
}

// Create создает операцию
func (s *Service) Create(ctx context.Context, entry *domain.FinancialEntry) (*models.EntryResponse, error) {
	s.logger.Info("Create: creating %s entry amount=%.2f", entry.Type, entry.Amount)

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEntry(created), nil
}

// Update обновляет операцию
func (s *Service) Update(ctx context.Context, entry *domain.FinancialEntry) (*models.EntryResponse, error) {
	updated, err := s.entryRepo.Update(ctx, entry)
	if err != nil {
		return nil, s.mapError("Update", entry.ID, err)
	}
	return models.FromDomainEntry(updated), nil
}

// Delete удаляет операцию
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting entry id=%d", id)

	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

// Summary считает приход, расход и баланс за период [from, to]
func (s *Service) Summary(ctx context.Context, from, to time.Time) (*models.SummaryResponse, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end before start", ErrInvalidInput)
	}

	entries, err := s.entryRepo.GetByPeriod(ctx, from, to)
	if err != nil {
		s.logger.Error("Summary: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	summary := domain.Summarize(from, to, entries)
	s.logger.Info("Summary: %s..%s entries=%d balance=%.2f",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat), summary.EntriesCount, summary.Balance)
	return models.FromDomainSummary(summary), nil
}

// ExportCSV пишет операции по фильтру в w
func (s *Service) ExportCSV(ctx context.Context, req *models.ListRequest, w io.Writer) error {
	list, err := s.list(ctx, "ExportCSV", req)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	writer.Comma = csvComma

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}
	for _, e := range list {
		if err := writer.Write(csvRecord(e)); err != nil {
			return fmt.Errorf("%w: ExportCSV - write row: %v", ErrInternal, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d entries", len(list))
	return nil
}

func (s *Service) list(ctx context.Context, op string, req *models.ListRequest) ([]*domain.FinancialEntry, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("%s: invalid filter: %v", op, err)
		return nil, fmt.Errorf("%w: invalid entry type", ErrInvalidInput)
	}

	list, err := s.entryRepo.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return list, nil
}

func csvRecord(e *domain.FinancialEntry) []string {
	appointment := ""
	if e.AppointmentID != nil {
		appointment = strconv.FormatInt(*e.AppointmentID, 10)
	}
	return []string{
		e.EntryDate.Format(domain.DateFormat),
		string(e.Type),
		e.Description,
		optional(e.Category),
		strconv.FormatFloat(e.Amount, 'f', 2, 64),
		optional(e.PaymentMethod),
		appointment,
	}
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, financeRepo.ErrEntryNotFound) {
		s.logger.Warn("%s: entry id=%d not found", op, id)
		return ErrEntryNotFound
	}
	s.logger.Error("%s: repository error for entry id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
