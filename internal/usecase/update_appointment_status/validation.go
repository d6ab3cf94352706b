package update_appointment_status

import (
	"fmt"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

func validateRequest(req *Request) (domain.AppointmentStatus, error) {
	if req.AppointmentID <= 0 {
		return "", fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	status, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	return status, nil
}
