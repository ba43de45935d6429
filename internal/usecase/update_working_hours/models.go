package update_working_hours

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// DayConfig настройки одного дня недели
type DayConfig struct {
	Day          string           // название дня (Pazar..Cumartesi)
	Open         types.TimeString // время открытия, "HH:MM"
	Close        types.TimeString // время закрытия, "HH:MM"
	IsOpen       bool             // рабочий ли день
	SlotDuration int              // длительность слота в минутах, 0 = по умолчанию
}

// Request модель запроса на замену расписания
type Request struct {
	Actor        domain.Actor // кто выполняет операцию
	WorkingHours []DayConfig  // полный набор дней, заменяет предыдущее расписание
}

// Response модель ответа с сохранённым расписанием
type Response struct {
	BusinessID   int64
	WorkingHours []DayConfig
}
