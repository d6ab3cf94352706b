package domain

// Значения сетки по умолчанию
const (
	DefaultDayStart    = "08:00"
	DefaultDayEnd      = "19:00"
	DefaultSlotMinutes = 30
)

// Ограничения бизнес-валидации
const (
	MaxNameLength        = 120
	MaxNotesLength       = 500
	MaxDescriptionLength = 1000
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
