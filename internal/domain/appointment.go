package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusDenied    AppointmentStatus = "denied"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a customer appointment at a business
type Appointment struct {
	ID         int64
	CustomerID int64
	BusinessID int64
	Date       time.Time        // календарная дата, время суток не используется
	Time       types.TimeString // время начала слота "HH:MM"
	Status     AppointmentStatus
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Valid returns true if the status is one of the four known values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true for statuses the lifecycle never leaves
// through the customer-facing contract.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusDenied || s == StatusCancelled
}

// BlocksSlot reports whether this appointment keeps its (business, date, time)
// slot occupied for NEW bookings. Everything except denied blocks: a cancelled
// appointment still holds the slot at creation time, even though the slot
// listing shows it as free (see SlotBookedStatuses).
func (a *Appointment) BlocksSlot() bool {
	return a.Status != StatusDenied
}

// IsCancelled returns true if the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// AppointmentsFilter фильтр для выборки записей по владельцу.
// Ровно одно из полей CustomerID/BusinessID должно быть задано.
type AppointmentsFilter struct {
	CustomerID *int64
	BusinessID *int64
	Status     *AppointmentStatus // опционально
	Date       *time.Time         // опционально, конкретная дата
	Limit      int
	Offset     int
}
