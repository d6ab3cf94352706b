package agenda

import (
	"sort"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

// Layout оси сетки: слоты времени и запасной список колонок
type Layout struct {
	Slots    []types.TimeString
	Fallback []string
}

// NewLayout генерирует слоты в [start, end) с шагом step
func NewLayout(start, end types.TimeString, step int, fallback []string) (Layout, error) {
	slots, err := domain.GenerateTimeSlots(start, end, step)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Slots: slots, Fallback: append([]string(nil), fallback...)}, nil
}

// Columns имена активных мастеров по алфавиту; если активных нет, используется запасной список
func (l Layout) Columns(professionals []*domain.Professional) []string {
	names := make([]string, 0, len(professionals))
	seen := make(map[string]struct{}, len(professionals))
	for _, p := range professionals {
		if !p.IsActive {
			continue
		}
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}
	if len(names) == 0 {
		return append([]string(nil), l.Fallback...)
	}
	sort.Strings(names)
	return names
}

// Contains проверяет, что положение является ячейкой сетки с колонками columns
func (l Layout) Contains(p domain.Placement, columns []string) bool {
	if p.Time.Validate() != nil || !domain.ContainsSlot(l.Slots, p.Time) {
		return false
	}
	for _, c := range columns {
		if c == p.ProfessionalName {
			return true
		}
	}
	return false
}
