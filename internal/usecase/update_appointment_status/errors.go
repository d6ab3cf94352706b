package update_appointment_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment_status: invalid input data")

	// ErrInvalidStatus возвращается для статуса вне перечисления
	ErrInvalidStatus = errors.New("update_appointment_status: invalid status")

	// ErrAppointmentNotFound возвращается, когда запись не найдена на указанную дату
	ErrAppointmentNotFound = errors.New("update_appointment_status: appointment not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment_status: internal error")
)
