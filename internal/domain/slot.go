package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Slot represents one bookable start time of a business day
type Slot struct {
	Time      types.TimeString
	Available bool
}
