package professionals

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInvalidImage возвращается для слишком большого файла или не изображения
	ErrInvalidImage = errors.New("invalid image")

	// ErrUploadFailed возвращается, когда хранилище не приняло файл
	ErrUploadFailed = errors.New("image upload failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
