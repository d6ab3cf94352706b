package objectstorage

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("objectstorage client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("objectstorage client: invalid response")

	// ErrPayloadTooLarge возвращается, если файл превышает допустимый размер
	ErrPayloadTooLarge = errors.New("objectstorage client: payload too large")

	// ErrUnsupportedType возвращается для файлов, не являющихся изображением
	ErrUnsupportedType = errors.New("objectstorage client: unsupported content type")
)
