package update_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	UpdateStatusByBusiness(ctx context.Context, id, businessID int64, status domain.AppointmentStatus) error
	CancelByCustomer(ctx context.Context, id, customerID int64) error
	GetByIDForBusiness(ctx context.Context, id, businessID int64) (*domain.Appointment, error)
	GetByIDForCustomer(ctx context.Context, id, customerID int64) (*domain.Appointment, error)
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
