package update_working_hours

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor.ID <= 0 {
		return fmt.Errorf("%w: actor ID must be positive", ErrInvalidInput)
	}

	if len(req.WorkingHours) == 0 {
		return fmt.Errorf("%w: workingHours must not be empty", ErrInvalidInput)
	}

	seen := make(map[int]struct{}, len(req.WorkingHours))
	for i, day := range req.WorkingHours {
		idx, err := domain.DayIndex(day.Day)
		if err != nil {
			return fmt.Errorf("%w: workingHours[%d]: unknown day %q", ErrInvalidInput, i, day.Day)
		}
		if _, dup := seen[idx]; dup {
			return fmt.Errorf("%w: workingHours[%d]: duplicate day %q", ErrInvalidInput, i, day.Day)
		}
		seen[idx] = struct{}{}

		if err := validateDay(&day); err != nil {
			return fmt.Errorf("%w: workingHours[%d] (%s): %v", ErrInvalidInput, i, day.Day, err)
		}
	}

	return nil
}

func validateDay(day *DayConfig) error {
	if err := day.Open.Validate(); err != nil {
		return fmt.Errorf("invalid open time: %v", err)
	}
	if err := day.Close.Validate(); err != nil {
		return fmt.Errorf("invalid close time: %v", err)
	}

	// Для закрытых дней интервал не используется и не проверяется
	if day.IsOpen && !day.Open.IsBefore(day.Close) {
		return fmt.Errorf("open time %s must be before close time %s", day.Open, day.Close)
	}

	if day.SlotDuration < 0 {
		return fmt.Errorf("slotDuration %d must not be negative", day.SlotDuration)
	}
	if day.SlotDuration > 0 && (day.SlotDuration < domain.MinSlotDurationMinutes || day.SlotDuration > domain.MaxSlotDurationMinutes) {
		return fmt.Errorf("slotDuration %d must be between %d and %d minutes",
			day.SlotDuration, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return nil
}
