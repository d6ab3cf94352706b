package finance

import "errors"

var (
	// ErrEntryNotFound возвращается, когда финансовая операция не найдена
	ErrEntryNotFound = errors.New("finance.repository: entry not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("finance.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("finance.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("finance.repository: failed to scan row")
)
