package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonAgenda/internal/notify"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/appointments/models"
)

// Service сервис чтения и удаления записей
// Перенос, смена статуса и создание идут через usecase пакеты
type Service struct {
	appointmentRepo AppointmentRepository
	board           Board
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	board Board,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		board:           board,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// ListByDate получает записи на дату с опциональной фильтрацией по мастеру и статусу
func (s *Service) ListByDate(ctx context.Context, req *models.ListByDateRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByDate: fetching appointments for %s", req.Date.Format(domain.DateFormat))

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByDate: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.GetByDate(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}

// Delete удаляет запись и убирает ее с доски
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.board.Remove(ctx, appointment.Date, id)
	s.notifier.Push(notify.LevelInfo, fmt.Sprintf("Agendamento de %s removido", appointment.ClientName))

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}
