package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

// ErrInvalidSlotRange возвращается при некорректных границах или шаге сетки
var ErrInvalidSlotRange = errors.New("domain: invalid time slot range")

// GenerateTimeSlots генерирует слоты с шагом stepMinutes в полуинтервале [start, end)
// Результат упорядочен по возрастанию и не содержит дубликатов
func GenerateTimeSlots(start, end types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidSlotRange, err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidSlotRange, err)
	}
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive", ErrInvalidSlotRange)
	}
	if !start.IsBefore(end) {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0, (end.Minutes()-start.Minutes())/stepMinutes+1)
	for m := start.Minutes(); m < end.Minutes(); m += stepMinutes {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// DefaultTimeSlots слоты 08:00..18:30 с шагом 30 минут
func DefaultTimeSlots() []types.TimeString {
	slots, _ := GenerateTimeSlots(DefaultDayStart, DefaultDayEnd, DefaultSlotMinutes)
	return slots
}

// ContainsSlot проверяет, что время является одним из слотов сетки
func ContainsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, slot := range slots {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}
