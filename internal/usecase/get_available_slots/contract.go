package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBookedTimes возвращает занятые времена бизнеса на дату
	// (все записи, кроме отменённых)
	GetBookedTimes(ctx context.Context, businessID int64, date time.Time) ([]types.TimeString, error)
}

// BusinessHoursRepository интерфейс репозитория расписания
type BusinessHoursRepository interface {
	GetWorkingDay(ctx context.Context, businessID int64, dayOfWeek int) (*domain.BusinessHours, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
