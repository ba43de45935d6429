package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayIndex(t *testing.T) {
	idx, err := DayIndex("Pazar")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = DayIndex("Cumartesi")
	require.NoError(t, err)
	assert.Equal(t, 6, idx)

	_, err = DayIndex("Monday")
	assert.ErrorIs(t, err, ErrUnknownDayName)
}

func TestDayName(t *testing.T) {
	name, err := DayName(1)
	require.NoError(t, err)
	assert.Equal(t, "Pazartesi", name)

	_, err = DayName(7)
	assert.ErrorIs(t, err, ErrUnknownDayName)

	_, err = DayName(-1)
	assert.ErrorIs(t, err, ErrUnknownDayName)
}

func TestDayIndexNameRoundTrip(t *testing.T) {
	for i, name := range DayNames {
		idx, err := DayIndex(name)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestDayOfWeek(t *testing.T) {
	// 1 июня 2025 — воскресенье
	assert.Equal(t, 0, DayOfWeek(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	// 2 июня 2025 — понедельник
	assert.Equal(t, 1, DayOfWeek(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)))
	// 7 июня 2025 — суббота
	assert.Equal(t, 6, DayOfWeek(time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)))
}
