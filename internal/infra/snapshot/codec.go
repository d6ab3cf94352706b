package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// Encode сериализует список записей в JSON массив
func Encode(appointments []domain.Appointment) ([]byte, error) {
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	data, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

// Decode разбирает JSON массив записей
// Пустые данные означают отсутствие снимка
func Decode(data []byte) ([]domain.Appointment, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var appointments []domain.Appointment
	if err := json.Unmarshal(data, &appointments); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	for i, a := range appointments {
		if !a.Status.IsValid() {
			return nil, fmt.Errorf("%w: item %d: status %q", ErrCorrupted, i, a.Status)
		}
		if a.ProfessionalName == "" || a.Date.IsZero() {
			return nil, fmt.Errorf("%w: item %d: missing placement", ErrCorrupted, i)
		}
	}

	return appointments, nil
}
