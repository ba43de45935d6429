package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64            // ID клиента (из identity-заголовков)
	BusinessID int64            // ID бизнеса
	Date       time.Time        // дата записи (без времени)
	Time       types.TimeString // время начала слота, "HH:MM"
	Notes      string           // заметки клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64
	CustomerID int64
	BusinessID int64
	Date       time.Time
	Time       types.TimeString
	Status     string // всегда pending при создании
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
