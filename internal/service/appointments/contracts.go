package appointments

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByIDForCustomer(ctx context.Context, id, customerID int64) (*domain.Appointment, error)
	GetByIDForBusiness(ctx context.Context, id, businessID int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	CountByStatus(ctx context.Context, filter domain.AppointmentsFilter) (map[domain.AppointmentStatus]int, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByOwner(ctx context.Context, userID int64) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
