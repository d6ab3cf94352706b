package update_appointment_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/notify"
)

// UseCase use case смены статуса записи из селектора карточки
type UseCase struct {
	board           *agenda.Board
	appointmentRepo AppointmentRepository
	notifier        Notifier
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	board *agenda.Board,
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		board:           board,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute меняет статус; допустим любой переход, мастер и время записи не меняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointmentStatus: id=%d, status=%q", req.AppointmentID, req.Status)

	// 1. Валидация
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Список на дату должен быть на доске
	if err := uc.board.EnsureLoaded(ctx, req.Date, uc.appointmentRepo); err != nil {
		uc.logger.Error("UpdateAppointmentStatus: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	// 3. Оптимистично меняем на доске
	previous, err := uc.board.UpdateStatus(ctx, req.Date, req.AppointmentID, status)
	if err != nil {
		if errors.Is(err, agenda.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Сохраняем; при ошибке возвращаем прежний статус
	if err := uc.appointmentRepo.UpdateStatus(ctx, req.AppointmentID, status); err != nil {
		if _, revertErr := uc.board.UpdateStatus(ctx, req.Date, req.AppointmentID, previous); revertErr != nil {
			uc.logger.Warn("UpdateAppointmentStatus: failed to revert board for id=%d: %v", req.AppointmentID, revertErr)
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to persist status for id=%d: %v", req.AppointmentID, err)
		uc.notifier.Push(notify.LevelError, "Não foi possível atualizar o status")
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	updated, err := uc.board.Get(req.Date, req.AppointmentID)
	if err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: appointment id=%d left the board after update", req.AppointmentID)
	}

	uc.metrics.ObserveStatusUpdate(string(status))
	uc.notifier.Push(notify.LevelSuccess, fmt.Sprintf("Status atualizado para %s", domain.StatusLabel(status)))
	uc.logger.Info("UpdateAppointmentStatus: id=%d %s -> %s", req.AppointmentID, previous, status)

	return &Response{Appointment: updated, PreviousStatus: previous}, nil
}
