package get_agenda

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// UseCase use case построения сетки расписания на дату
type UseCase struct {
	board            *agenda.Board
	layout           agenda.Layout
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	board *agenda.Board,
	layout agenda.Layout,
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		board:            board,
		layout:           layout,
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Execute перечитывает записи на дату и строит сетку: строки слоты, колонки активные мастера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAgenda: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAgenda: date=%s, view=%s", date.Format(domain.DateFormat), req.View)

	// 1. Колонки сетки
	professionals, err := uc.professionalRepo.GetAll(ctx, true)
	if err != nil {
		uc.logger.Error("GetAgenda: failed to get professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to get professionals: %v", ErrInternal, err)
	}
	columns := uc.layout.Columns(professionals)

	// 2. Записи через защиту поколений: устаревший результат на доску не попадет
	committed, err := uc.board.Load(ctx, date, uc.appointmentRepo)
	if err != nil {
		uc.logger.Error("GetAgenda: failed to load appointments for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}
	if !committed {
		uc.logger.Warn("GetAgenda: load for %s superseded by a newer one", date.Format(domain.DateFormat))
	}

	// 3. Представление
	resp := &Response{Stale: !committed}
	if req.View == ViewMobile {
		grid := uc.board.MobileGrid(date, columns, uc.layout.Slots)
		resp.Mobile = &grid
	} else {
		grid := uc.board.DesktopGrid(date, columns, uc.layout.Slots)
		resp.Desktop = &grid
	}

	uc.logger.Info("GetAgenda: built %s grid %s with %d professionals and %d slots",
		viewName(req.View), date.Format(domain.DateFormat), len(columns), len(uc.layout.Slots))
	return resp, nil
}

func viewName(v View) View {
	if v == "" {
		return ViewDesktop
	}
	return v
}
