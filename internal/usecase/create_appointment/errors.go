package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidSlot возвращается, если мастер или время не являются ячейкой сетки
	ErrInvalidSlot = errors.New("create_appointment: slot is not part of the grid")

	// ErrCellOccupied возвращается, когда ячейка уже занята
	ErrCellOccupied = errors.New("create_appointment: cell is occupied")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
