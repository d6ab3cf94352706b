package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonAgenda/internal/notify"
)

// UseCase use case создания новой записи в ячейке сетки
type UseCase struct {
	board            *agenda.Board
	layout           agenda.Layout
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	clientRepo       ClientRepository
	serviceRepo      ServiceRepository
	txManager        TransactionManager
	notifier         Notifier
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	board *agenda.Board,
	layout agenda.Layout,
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	clientRepo ClientRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		board:            board,
		layout:           layout,
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		clientRepo:       clientRepo,
		serviceRepo:      serviceRepo,
		txManager:        txManager,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute создает запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: professional=%q, date=%s, time=%s",
		req.ProfessionalName, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	appointment, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Имена клиента и услуги из справочников
	if appointment.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *appointment.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateAppointment: client id=%d not found", *appointment.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get client: %v", err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
		appointment.ClientName = client.Name
	}
	if appointment.ServiceID != nil {
		service, err := uc.serviceRepo.GetByID(ctx, *appointment.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", *appointment.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service: %v", err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		appointment.ServiceName = service.Name
	}

	// 3. Ячейка должна существовать в сетке
	professionals, err := uc.professionalRepo.GetAll(ctx, true)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to get professionals: %v", ErrInternal, err)
	}
	placement := appointment.Placement()
	if !uc.layout.Contains(placement, uc.layout.Columns(professionals)) {
		uc.logger.Warn("CreateAppointment: cell %s is not part of the grid", appointment.Cell())
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, appointment.Cell())
	}

	// 4. Создаем в сериализуемой транзакции с проверкой занятости
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if uc.board.Policy() == agenda.PolicyReject && appointment.Occupies() {
			list, err := uc.appointmentRepo.GetByDate(txCtx, domain.AppointmentsFilter{Date: appointment.Date})
			if err != nil {
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}
			if other := agenda.FindCollision(list, placement, 0); other != nil {
				return fmt.Errorf("%w: taken by appointment id=%d", ErrCellOccupied, other.ID)
			}
		}

		result, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		created = result
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCellOccupied) {
			uc.logger.Warn("CreateAppointment: %v", err)
			uc.notifier.Push(notify.LevelWarning, fmt.Sprintf("Horário ocupado: %s às %s", placement.ProfessionalName, placement.Time))
			return nil, err
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, err
	}

	// 5. Доска: если день уже загружен, добавляем запись; расхождение лечится перезагрузкой
	if uc.board.IsLoaded(created.Date) {
		if err := uc.board.Add(ctx, *created); err != nil {
			uc.logger.Warn("CreateAppointment: board diverged, reloading %s: %v", created.Date.Format(domain.DateFormat), err)
			if _, err := uc.board.Load(ctx, created.Date, uc.appointmentRepo); err != nil {
				uc.logger.Error("CreateAppointment: failed to reload board: %v", err)
			}
		}
	}

	uc.notifier.Push(notify.LevelSuccess, fmt.Sprintf("Agendamento criado para %s às %s", created.ProfessionalName, created.Time))
	uc.logger.Info("CreateAppointment: created appointment id=%d in %s", created.ID, created.Cell())

	return &Response{Appointment: created}, nil
}
