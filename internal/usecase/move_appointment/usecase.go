package move_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/notify"
)

// UseCase use case переноса записи в другую ячейку сетки
type UseCase struct {
	board            *agenda.Board
	layout           agenda.Layout
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	notifier         Notifier
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	board *agenda.Board,
	layout agenda.Layout,
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		board:            board,
		layout:           layout,
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		notifier:         notifier,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет перенос в две фазы: предложение по ключу ячейки, затем применение
// Доска обновляется оптимистично и откатывается, если сохранить изменение не удалось
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveAppointment: id=%d, date=%s, droppable=%q",
		req.AppointmentID, req.Date.Format(domain.DateFormat), req.DroppableID)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Список на дату должен быть на доске
	if err := uc.board.EnsureLoaded(ctx, req.Date, uc.appointmentRepo); err != nil {
		uc.logger.Error("MoveAppointment: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	// 3. Фаза 1: разбираем ключ ячейки
	proposal, err := uc.board.Propose(req.Date, req.AppointmentID, req.DroppableID)
	if err != nil {
		uc.metrics.ObserveMove(OutcomeInvalid)
		if errors.Is(err, agenda.ErrAppointmentNotFound) {
			uc.logger.Warn("MoveAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Warn("MoveAppointment: invalid drop target %q: %v", req.DroppableID, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDropTarget, req.DroppableID)
	}

	// 4. Ячейка должна существовать в текущей сетке
	professionals, err := uc.professionalRepo.GetAll(ctx, true)
	if err != nil {
		uc.logger.Error("MoveAppointment: failed to get professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to get professionals: %v", ErrInternal, err)
	}
	if !uc.layout.Contains(proposal.To, uc.layout.Columns(professionals)) {
		uc.metrics.ObserveMove(OutcomeInvalid)
		uc.logger.Warn("MoveAppointment: cell %q is not part of the grid", req.DroppableID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDropTarget, req.DroppableID)
	}

	if proposal.IsNoop() {
		uc.metrics.ObserveMove(OutcomeNoop)
		current, _ := uc.board.Get(req.Date, req.AppointmentID)
		return &Response{Appointment: current, From: proposal.From, Moved: false}, nil
	}

	// 5. Фаза 2: оптимистично применяем на доске
	if err := uc.board.Apply(ctx, proposal); err != nil {
		return nil, uc.reject(proposal, err)
	}

	// 6. Сохраняем в сериализуемой транзакции с повторной проверкой ячейки
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		list, err := uc.appointmentRepo.GetByDate(txCtx, domain.AppointmentsFilter{Date: proposal.Date})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		var stored *domain.Appointment
		for _, a := range list {
			if a.ID == proposal.AppointmentID {
				stored = a
				break
			}
		}
		if stored == nil {
			return ErrAppointmentNotFound
		}

		if uc.board.Policy() == agenda.PolicyReject && stored.Occupies() {
			if other := agenda.FindCollision(list, proposal.To, stored.ID); other != nil {
				return fmt.Errorf("%w: taken by appointment id=%d", ErrCellOccupied, other.ID)
			}
		}

		if err := uc.appointmentRepo.UpdatePlacement(txCtx, proposal.AppointmentID, proposal.To); err != nil {
			return fmt.Errorf("%w: failed to update placement: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if revertErr := uc.board.Revert(ctx, proposal); revertErr != nil {
			uc.logger.Warn("MoveAppointment: failed to revert board for id=%d: %v", proposal.AppointmentID, revertErr)
		}
		if errors.Is(err, ErrCellOccupied) || errors.Is(err, ErrAppointmentNotFound) {
			return nil, uc.reject(proposal, err)
		}
		uc.metrics.ObserveMove(OutcomeFailed)
		uc.logger.Error("MoveAppointment: failed to persist move id=%d: %v", proposal.AppointmentID, err)
		uc.notifier.Push(notify.LevelError, "Não foi possível mover o agendamento")
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	moved, err := uc.board.Get(req.Date, req.AppointmentID)
	if err != nil {
		uc.logger.Warn("MoveAppointment: appointment id=%d left the board after move", req.AppointmentID)
	}

	uc.metrics.ObserveMove(OutcomeMoved)
	uc.notifier.Push(notify.LevelSuccess, fmt.Sprintf("Agendamento movido para %s às %s",
		proposal.To.ProfessionalName, proposal.To.Time))
	uc.logger.Info("MoveAppointment: moved id=%d from %s to %s",
		proposal.AppointmentID,
		domain.NewCellKey(proposal.From.ProfessionalName, proposal.From.Time),
		domain.NewCellKey(proposal.To.ProfessionalName, proposal.To.Time))

	return &Response{Appointment: moved, From: proposal.From, Moved: true}, nil
}

// reject переводит отказ применения в ошибку usecase и уведомляет пользователя
func (uc *UseCase) reject(proposal *agenda.Proposal, err error) error {
	switch {
	case errors.Is(err, agenda.ErrCellOccupied), errors.Is(err, ErrCellOccupied):
		uc.metrics.ObserveMove(OutcomeRejected)
		uc.logger.Warn("MoveAppointment: cell occupied for id=%d: %v", proposal.AppointmentID, err)
		uc.notifier.Push(notify.LevelWarning, fmt.Sprintf("Horário ocupado: %s às %s",
			proposal.To.ProfessionalName, proposal.To.Time))
		return fmt.Errorf("%w: %s", ErrCellOccupied, domain.NewCellKey(proposal.To.ProfessionalName, proposal.To.Time))

	case errors.Is(err, agenda.ErrAppointmentNotFound), errors.Is(err, ErrAppointmentNotFound),
		errors.Is(err, agenda.ErrStaleProposal):
		uc.metrics.ObserveMove(OutcomeRejected)
		uc.logger.Warn("MoveAppointment: appointment id=%d changed concurrently: %v", proposal.AppointmentID, err)
		return ErrAppointmentNotFound

	default:
		uc.metrics.ObserveMove(OutcomeFailed)
		uc.logger.Error("MoveAppointment: failed to apply move id=%d: %v", proposal.AppointmentID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
