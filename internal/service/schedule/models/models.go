package models

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// DaySchedule расписание одного дня недели
type DaySchedule struct {
	Day          string           // название дня (Pazar..Cumartesi)
	Open         types.TimeString // время открытия
	Close        types.TimeString // время закрытия
	IsOpen       bool             // рабочий ли день
	SlotDuration int              // длительность слота, минуты
}

// ScheduleResponse расписание бизнеса по дням
type ScheduleResponse struct {
	BusinessID   int64
	WorkingHours []DaySchedule
}
