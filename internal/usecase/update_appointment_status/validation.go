package update_appointment_status

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.Actor.ID <= 0 {
		return fmt.Errorf("%w: actor ID must be positive", ErrInvalidInput)
	}

	if !req.Actor.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Actor.Role)
	}

	if !domain.AppointmentStatus(req.Status).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	return nil
}
