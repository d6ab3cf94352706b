package finance

import "errors"

var (
	// ErrEntryNotFound возвращается, когда операция не найдена
	ErrEntryNotFound = errors.New("financial entry not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
