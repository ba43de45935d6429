package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func workingDay(open, close string, slotDuration int) *domain.BusinessHours {
	return &domain.BusinessHours{
		BusinessID:   3,
		DayOfWeek:    1,
		OpenTime:     types.TimeString(open),
		CloseTime:    types.TimeString(close),
		IsWorkingDay: true,
		SlotDuration: slotDuration,
	}
}

func slotTimes(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = string(s.Time)
	}
	return out
}

func TestComputeSlots_StandardDay(t *testing.T) {
	// 09:00-18:00 с шагом 30 минут = 18 слотов, последний 17:30
	slots, err := computeSlots(workingDay("09:00", "18:00", 30), nil)
	require.NoError(t, err)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", string(slots[0].Time))
	assert.Equal(t, "17:30", string(slots[17].Time))
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestComputeSlots_LastSlotMayOverrunClose(t *testing.T) {
	// Слот генерируется, пока его НАЧАЛО раньше закрытия:
	// 10:30+45 выходит за 11:00, но слот всё равно попадает в сетку
	slots, err := computeSlots(workingDay("09:00", "11:00", 45), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:45", "10:30"}, slotTimes(slots))
}

func TestComputeSlots_BookedTimesUnavailable(t *testing.T) {
	booked := []types.TimeString{"10:00", "14:30"}
	slots, err := computeSlots(workingDay("09:00", "18:00", 30), booked)
	require.NoError(t, err)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[string(s.Time)] = s.Available
	}

	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["14:30"])
	assert.True(t, byTime["09:00"])
	assert.True(t, byTime["10:30"])
}

func TestComputeSlots_NonWorkingDay(t *testing.T) {
	hours := workingDay("09:00", "18:00", 30)
	hours.IsWorkingDay = false

	slots, err := computeSlots(hours, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlots_NilHours(t *testing.T) {
	slots, err := computeSlots(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlots_ZeroDurationDefaultsTo30(t *testing.T) {
	slots, err := computeSlots(workingDay("09:00", "10:00", 0), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30"}, slotTimes(slots))
}

func TestComputeSlots_NegativeDuration(t *testing.T) {
	_, err := computeSlots(workingDay("09:00", "18:00", -30), nil)
	assert.ErrorIs(t, err, ErrInvalidSlotConfig)
}

func TestComputeSlots_OpenEqualsClose(t *testing.T) {
	slots, err := computeSlots(workingDay("09:00", "09:00", 30), nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeSlots_Deterministic(t *testing.T) {
	booked := []types.TimeString{"12:00"}
	first, err := computeSlots(workingDay("09:00", "18:00", 60), booked)
	require.NoError(t, err)
	second, err := computeSlots(workingDay("09:00", "18:00", 60), booked)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
