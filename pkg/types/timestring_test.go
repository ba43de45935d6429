package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 2, 9, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromMinutes(0))
	assert.Equal(t, TimeString("09:45"), NewTimeStringFromMinutes(585))
	assert.Equal(t, TimeString("23:59"), NewTimeStringFromMinutes(1439))
}

func TestValidate(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "12-30", "12:300", "abcde"}
	for _, s := range invalid {
		assert.ErrorIs(t, TimeString(s).Validate(), ErrInvalidTimeString, s)
	}
}

func TestMinutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = TimeString("25:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("10:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), ts)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
