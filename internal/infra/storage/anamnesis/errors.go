package anamnesis

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон анкеты не найден
	ErrTemplateNotFound = errors.New("anamnesis.repository: template not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("anamnesis.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("anamnesis.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("anamnesis.repository: failed to scan row")

	// ErrEncode возвращается, если поля или ответы не сериализуются в jsonb
	ErrEncode = errors.New("anamnesis.repository: failed to encode jsonb")
)
