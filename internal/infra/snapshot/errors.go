package snapshot

import "errors"

var (
	// ErrCorrupted сохраненные данные не разбираются как список записей
	ErrCorrupted = errors.New("snapshot: corrupted data")

	// ErrEncode не удалось сериализовать список
	ErrEncode = errors.New("snapshot: failed to encode")

	// ErrStorage ошибка хранилища снимка
	ErrStorage = errors.New("snapshot: storage error")
)
