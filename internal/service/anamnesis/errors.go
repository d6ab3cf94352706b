package anamnesis

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон не найден
	ErrTemplateNotFound = errors.New("anamnesis template not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidTemplate возвращается для шаблона с некорректными полями
	ErrInvalidTemplate = errors.New("invalid anamnesis template")

	// ErrInvalidAnswers возвращается, когда ответы не соответствуют шаблону
	ErrInvalidAnswers = errors.New("invalid anamnesis answers")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
