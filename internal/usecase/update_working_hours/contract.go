package update_working_hours

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BusinessHoursRepository интерфейс репозитория расписаний
type BusinessHoursRepository interface {
	ReplaceForBusiness(ctx context.Context, businessID int64, hours []*domain.BusinessHours) error
	GetByBusiness(ctx context.Context, businessID int64) ([]*domain.BusinessHours, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByOwner(ctx context.Context, userID int64) (*domain.Business, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
