package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusApproved, StatusDenied, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, AppointmentStatus("confirmed").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusDenied.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

// Блокировка слота при создании и занятость в выдаче слотов используют
// разные предикаты: denied освобождает слот для новой записи, cancelled
// остаётся блокирующим.
func TestBlocksSlot(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		blocks bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusCancelled, true},
		{StatusDenied, false},
	}

	for _, tt := range tests {
		apt := &Appointment{Status: tt.status}
		assert.Equal(t, tt.blocks, apt.BlocksSlot(), string(tt.status))
	}
}

func TestPredicateAsymmetry(t *testing.T) {
	assert.NotContains(t, SlotBookedStatuses, StatusCancelled)
	assert.Contains(t, SlotBookedStatuses, StatusDenied)

	assert.Contains(t, CreationBlockingStatuses, StatusCancelled)
	assert.NotContains(t, CreationBlockingStatuses, StatusDenied)
}
