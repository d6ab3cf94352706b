package domain

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

// ErrInvalidCellKey возвращается, если ключ ячейки не разбирается
var ErrInvalidCellKey = errors.New("domain: invalid cell key")

const cellKeySeparator = "-"

// CellKey идентификатор droppable ячейки: "{professionalName}-{timeSlotLabel}"
type CellKey string

// NewCellKey собирает ключ ячейки
func NewCellKey(professionalName string, slot types.TimeString) CellKey {
	return CellKey(professionalName + cellKeySeparator + slot.String())
}

// ParseCellKey разбирает ключ обратно в положение
// Разделителем считается последний '-', метка времени дефисов не содержит,
// поэтому имена вида "Ana-Paula" разбираются корректно
func ParseCellKey(key CellKey) (Placement, error) {
	s := string(key)
	idx := strings.LastIndex(s, cellKeySeparator)
	if idx <= 0 || idx == len(s)-1 {
		return Placement{}, ErrInvalidCellKey
	}

	professional := s[:idx]
	if strings.TrimSpace(professional) == "" {
		return Placement{}, ErrInvalidCellKey
	}

	slot, err := types.NewTimeStringFromString(s[idx+1:])
	if err != nil {
		return Placement{}, ErrInvalidCellKey
	}
	// Принимается только канонический ключ, построенный NewCellKey
	if NewCellKey(professional, slot) != key {
		return Placement{}, ErrInvalidCellKey
	}

	return Placement{ProfessionalName: professional, Time: slot}, nil
}

func (k CellKey) String() string {
	return string(k)
}
