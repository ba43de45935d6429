package update_appointment_status

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на смену статуса записи
type Request struct {
	AppointmentID int64        // ID записи
	Actor         domain.Actor // кто выполняет операцию (из identity-заголовков)
	Status        string       // целевой статус
}

// Response модель ответа с обновлённой записью
type Response struct {
	ID         int64
	CustomerID int64
	BusinessID int64
	Date       time.Time
	Time       types.TimeString
	Status     string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
