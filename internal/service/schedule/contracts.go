package schedule

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BusinessHoursRepository интерфейс репозитория расписаний
type BusinessHoursRepository interface {
	GetByBusiness(ctx context.Context, businessID int64) ([]*domain.BusinessHours, error)
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
