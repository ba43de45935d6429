package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownDayName возвращается, когда имя дня недели не найдено в таблице
var ErrUnknownDayName = errors.New("domain: unknown day name")

// DayNames таблица имен дней недели, Sunday-first (индекс = day_of_week).
// Единственный источник истины для обоих направлений конвертации:
// настройки расписания приходят с именами, в БД хранятся индексы 0..6.
var DayNames = [7]string{
	"Pazar",     // 0, Sunday
	"Pazartesi", // 1, Monday
	"Salı",      // 2, Tuesday
	"Çarşamba",  // 3, Wednesday
	"Perşembe",  // 4, Thursday
	"Cuma",      // 5, Friday
	"Cumartesi", // 6, Saturday
}

// DayIndex maps a day name to its Sunday-first day_of_week index.
func DayIndex(name string) (int, error) {
	for i, n := range DayNames {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDayName, name)
}

// DayName maps a Sunday-first day_of_week index back to its name.
func DayName(dayOfWeek int) (string, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return "", fmt.Errorf("%w: index %d out of range", ErrUnknownDayName, dayOfWeek)
	}
	return DayNames[dayOfWeek], nil
}

// DayOfWeek returns the Sunday-first index for a calendar date.
// time.Weekday уже нумеруется с воскресенья, конвертация прямая.
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}
