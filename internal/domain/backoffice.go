package domain

import (
	"errors"
	"time"
)

// ErrInvalidEntryType возвращается для типа финансовой операции вне перечисления
var ErrInvalidEntryType = errors.New("domain: invalid financial entry type")

// Client клиент салона
type Client struct {
	ID        int64
	Name      string
	CPF       *string // только цифры
	Phone     *string // только цифры
	Email     *string
	BirthDate *time.Time
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Professional мастер салона
// В сетке расписания мастер идентифицируется только по имени
type Professional struct {
	ID        int64
	UserID    *int64
	Name      string
	Email     *string
	Phone     *string
	Specialty *string
	AvatarURL *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CatalogService услуга из каталога салона
type CatalogService struct {
	ID              int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Product товар на складе
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	Stock       int
	ImageURL    *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EntryType тип финансовой операции
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// ParseEntryType конвертирует строку в EntryType с валидацией
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case EntryIncome, EntryExpense:
		return EntryType(s), nil
	default:
		return "", ErrInvalidEntryType
	}
}

// FinancialEntry финансовая операция (приход или расход)
type FinancialEntry struct {
	ID            int64
	Type          EntryType
	Description   string
	Category      *string
	Amount        float64
	PaymentMethod *string
	EntryDate     time.Time
	AppointmentID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FinancialSummary итоги за период
type FinancialSummary struct {
	From         time.Time
	To           time.Time
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
	EntriesCount int
}

// Summarize считает итоги по списку операций
func Summarize(from, to time.Time, entries []*FinancialEntry) FinancialSummary {
	summary := FinancialSummary{From: from, To: to, EntriesCount: len(entries)}
	for _, e := range entries {
		switch e.Type {
		case EntryIncome:
			summary.TotalIncome += e.Amount
		case EntryExpense:
			summary.TotalExpense += e.Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return summary
}

// Profile профиль текущего пользователя
type Profile struct {
	UserID    int64
	Name      string
	Email     *string
	Phone     *string
	AvatarURL *string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FinancialEntriesFilter фильтр выборки финансовых операций; границы периода включительно
type FinancialEntriesFilter struct {
	From *time.Time
	To   *time.Time
	Type *EntryType
}
