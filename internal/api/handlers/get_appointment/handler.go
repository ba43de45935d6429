package get_appointment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgNotFound             = "запись не найдена"
	msgBusinessNotFound     = "бизнес не найден"
	msgForbidden            = "доступ запрещен"
	msgUnauthorized         = "требуется аутентификация"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetByID(r.Context(), &models.GetAppointmentRequest{
		AppointmentID: appointmentID,
		Actor:         actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Not found: appointment_id=%d, actor_id=%d", appointmentID, actor.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointmentsService.ErrBusinessNotFound):
			h.logger.Warn("GET /appointments/{id} - Business not found for actor_id=%d", actor.ID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id} - Access denied: appointment_id=%d, actor_id=%d", appointmentID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		default:
			h.logger.Error("GET /appointments/{id} - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		BusinessID: resp.BusinessID,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.Time.String(),
		Status:     resp.Status,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
