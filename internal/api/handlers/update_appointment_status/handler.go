package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	updateStatus "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment_status"
)

const (
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус"
	msgNotFound             = "запись не найдена"
	msgBusinessNotFound     = "бизнес не найден"
	msgForbidden            = "операция недоступна для данной роли"
	msgUnauthorized         = "требуется аутентификация"
)

type Handler struct {
	useCase UpdateStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateStatus.Request{
		AppointmentID: appointmentID,
		Actor:         actor,
		Status:        req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Not found: appointment_id=%d, actor_id=%d", appointmentID, actor.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateStatus.ErrBusinessNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Business not found for actor_id=%d", actor.ID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, updateStatus.ErrForbidden):
			h.logger.Warn("PATCH /appointments/{id}/status - Forbidden: appointment_id=%d, actor_id=%d, status=%s",
				appointmentID, actor.ID, req.Status)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateStatus.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateStatus.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated: appointment_id=%d, status=%s, actor_id=%d",
		appointmentID, result.Status, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
