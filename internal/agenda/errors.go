package agenda

import "errors"

var (
	// ErrInvalidDropTarget ключ droppable ячейки отсутствует или не разбирается
	ErrInvalidDropTarget = errors.New("agenda: invalid drop target")

	// ErrCellOccupied целевая ячейка занята другой записью
	ErrCellOccupied = errors.New("agenda: cell is occupied")

	// ErrAppointmentNotFound записи нет в списке на указанную дату
	ErrAppointmentNotFound = errors.New("agenda: appointment not found")

	// ErrStaleProposal запись изменилась после того, как было вычислено предложение
	ErrStaleProposal = errors.New("agenda: stale move proposal")

	// ErrInvalidPolicy неизвестная политика коллизий
	ErrInvalidPolicy = errors.New("agenda: invalid collision policy")
)
