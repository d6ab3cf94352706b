package move_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_appointment: invalid input data")

	// ErrInvalidDropTarget возвращается, если ячейка не существует в сетке
	ErrInvalidDropTarget = errors.New("move_appointment: invalid drop target")

	// ErrAppointmentNotFound возвращается, когда запись не найдена на указанную дату
	ErrAppointmentNotFound = errors.New("move_appointment: appointment not found")

	// ErrCellOccupied возвращается, когда целевая ячейка занята
	ErrCellOccupied = errors.New("move_appointment: cell is occupied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_appointment: internal error")
)
