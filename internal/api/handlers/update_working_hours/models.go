package update_working_hours

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateHours "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_working_hours"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// DayConfigRequest настройки одного дня в запросе.
// Поля в camelCase, как их шлёт фронтенд настроек.
type DayConfigRequest struct {
	Day          string `json:"day"`
	Open         string `json:"open"`
	Close        string `json:"close"`
	IsOpen       bool   `json:"isOpen"`
	SlotDuration int    `json:"slotDuration"`
}

// UpdateWorkingHoursRequest HTTP request model
type UpdateWorkingHoursRequest struct {
	WorkingHours []DayConfigRequest `json:"workingHours"`
}

// UpdateWorkingHoursResponse HTTP response model
type UpdateWorkingHoursResponse struct {
	BusinessID   int64              `json:"businessId"`
	WorkingHours []DayConfigRequest `json:"workingHours"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateWorkingHoursRequest) ToUseCaseRequest(actor domain.Actor) *updateHours.Request {
	days := make([]updateHours.DayConfig, 0, len(r.WorkingHours))
	for _, day := range r.WorkingHours {
		days = append(days, updateHours.DayConfig{
			Day:          day.Day,
			Open:         types.TimeString(day.Open),
			Close:        types.TimeString(day.Close),
			IsOpen:       day.IsOpen,
			SlotDuration: day.SlotDuration,
		})
	}
	return &updateHours.Request{Actor: actor, WorkingHours: days}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateHours.Response) *UpdateWorkingHoursResponse {
	out := &UpdateWorkingHoursResponse{
		BusinessID:   resp.BusinessID,
		WorkingHours: make([]DayConfigRequest, 0, len(resp.WorkingHours)),
	}
	for _, day := range resp.WorkingHours {
		out.WorkingHours = append(out.WorkingHours, DayConfigRequest{
			Day:          day.Day,
			Open:         day.Open.String(),
			Close:        day.Close.String(),
			IsOpen:       day.IsOpen,
			SlotDuration: day.SlotDuration,
		})
	}
	return out
}
