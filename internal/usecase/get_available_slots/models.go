package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID int64     // ID бизнеса
	Date       time.Time // дата, на которую запрашиваются слоты
}

// Response модель ответа со списком слотов.
// Closed=true означает, что бизнес не работает в этот день недели —
// это НЕ то же самое, что "все слоты заняты" (Slots пустой в обоих
// случаях, но при полной занятости Closed=false и Hours заполнен).
type Response struct {
	BusinessID int64
	Date       time.Time
	Closed     bool
	Slots      []domain.Slot
	Hours      *HoursInfo // nil, когда Closed
}

// HoursInfo рабочие часы дня, по которым сгенерированы слоты
type HoursInfo struct {
	Open         types.TimeString
	Close        types.TimeString
	SlotDuration int
}
