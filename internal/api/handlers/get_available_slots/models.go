package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// SlotResponse один слот в ответе
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// BusinessHoursResponse рабочие часы дня в ответе
type BusinessHoursResponse struct {
	Open         string `json:"open"`
	Close        string `json:"close"`
	SlotDuration int    `json:"slot_duration"`
}

// AvailableSlotsResponse HTTP response model.
// Message заполняется только для нерабочего дня.
type AvailableSlotsResponse struct {
	AvailableSlots []SlotResponse         `json:"available_slots"`
	BusinessHours  *BusinessHoursResponse `json:"business_hours,omitempty"`
	Message        string                 `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		AvailableSlots: make([]SlotResponse, 0, len(resp.Slots)),
	}

	if resp.Closed {
		out.Message = "closed"
		return out
	}

	for _, slot := range resp.Slots {
		out.AvailableSlots = append(out.AvailableSlots, SlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
		})
	}

	if resp.Hours != nil {
		out.BusinessHours = &BusinessHoursResponse{
			Open:         resp.Hours.Open.String(),
			Close:        resp.Hours.Close.String(),
			SlotDuration: resp.Hours.SlotDuration,
		}
	}

	return out
}
