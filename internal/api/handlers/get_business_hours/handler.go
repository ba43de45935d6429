package get_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

const (
	msgInvalidBusinessID = "некорректный идентификатор бизнеса"
	msgBusinessNotFound  = "бизнес не найден"
)

// DayHoursResponse расписание одного дня в ответе
type DayHoursResponse struct {
	Day          string `json:"day"`
	Open         string `json:"open"`
	Close        string `json:"close"`
	IsOpen       bool   `json:"is_open"`
	SlotDuration int    `json:"slot_duration"`
}

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	BusinessID   int64              `json:"business_id"`
	WorkingHours []DayHoursResponse `json:"working_hours"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hours - Invalid business id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.service.GetByBusiness(r.Context(), businessID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrBusinessNotFound):
			h.logger.Warn("GET /hours - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBusinessID)

		default:
			h.logger.Error("GET /hours - Failed: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.ScheduleResponse) *BusinessHoursResponse {
	out := &BusinessHoursResponse{
		BusinessID:   resp.BusinessID,
		WorkingHours: make([]DayHoursResponse, 0, len(resp.WorkingHours)),
	}
	for _, day := range resp.WorkingHours {
		out.WorkingHours = append(out.WorkingHours, DayHoursResponse{
			Day:          day.Day,
			Open:         day.Open.String(),
			Close:        day.Close.String(),
			IsOpen:       day.IsOpen,
			SlotDuration: day.SlotDuration,
		})
	}
	return out
}
