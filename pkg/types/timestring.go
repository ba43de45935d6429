package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString represents a wall-clock time of day as a zero-padded "HH:MM" string.
// Both components are zero-padded, so lexicographic comparison of two valid
// TimeString values matches chronological comparison.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит и валидирует строку формата "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с полуночи
func NewTimeStringFromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// String returns the underlying "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true for the empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format and the 00:00..23:59 range.
func (t TimeString) Validate() error {
	var hours, minutes int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hours, &minutes); err != nil {
		return ErrInvalidTimeString
	}
	if len(t) != 5 || t[2] != ':' {
		return ErrInvalidTimeString
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return ErrInvalidTimeString
	}
	return nil
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	var hours, minutes int
	fmt.Sscanf(string(t), "%02d:%02d", &hours, &minutes)
	return hours*60 + minutes, nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед.
// Результат за пределами суток ошибочен: слоты не пересекают полночь.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := current + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes is out of day range", ErrInvalidTimeString, t, minutes)
	}
	return NewTimeStringFromMinutes(total), nil
}
