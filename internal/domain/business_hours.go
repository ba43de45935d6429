package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// BusinessHours represents the schedule of a business for a single weekday.
// DayOfWeek uses the Sunday-first convention: 0 = Sunday .. 6 = Saturday
// (matches the day-name table in weekday.go, NOT ISO 8601).
type BusinessHours struct {
	ID           int64
	BusinessID   int64
	DayOfWeek    int
	OpenTime     types.TimeString
	CloseTime    types.TimeString
	IsWorkingDay bool
	SlotDuration int // минуты; 0 означает "не задано", применяется DefaultSlotDurationMinutes
}

// EffectiveSlotDuration returns the configured slot duration, falling back to
// the default when unset.
func (h *BusinessHours) EffectiveSlotDuration() int {
	if h.SlotDuration == 0 {
		return DefaultSlotDurationMinutes
	}
	return h.SlotDuration
}
