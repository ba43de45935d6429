package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgInvalidQuery  = "некорректные параметры запроса"
	msgInvalidDate   = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgForbidden     = "доступ запрещен"
	msgUnauthorized  = "требуется аутентификация"
	msgInvalidStatus = "некорректный статус"
)

// AppointmentItem одна запись в списке
type AppointmentItem struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	BusinessID int64  `json:"business_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Appointments []AppointmentItem `json:"appointments"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
}

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?status=&date=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.ListAppointmentsRequest{Actor: actor}
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.Offset = offset
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: actor_id=%d, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("GET /appointments - Access denied: actor_id=%d", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments - Failed: actor_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &ListResponse{
		Appointments: make([]AppointmentItem, 0, len(result.Appointments)),
		Limit:        result.Limit,
		Offset:       result.Offset,
	}
	for _, apt := range result.Appointments {
		resp.Appointments = append(resp.Appointments, AppointmentItem{
			ID:         apt.ID,
			CustomerID: apt.CustomerID,
			BusinessID: apt.BusinessID,
			Date:       apt.Date.Format(domain.DateFormat),
			Time:       apt.Time.String(),
			Status:     apt.Status,
			Notes:      apt.Notes,
			CreatedAt:  apt.CreatedAt.Format(time.RFC3339),
			UpdatedAt:  apt.UpdatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
