package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	updateHours "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_working_hours"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHours       = "некорректное расписание"
	msgForbidden          = "управление расписанием доступно только владельцу бизнеса"
	msgBusinessNotFound   = "бизнес не найден"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase UpdateWorkingHoursUseCase
	logger  Logger
}

func NewHandler(useCase UpdateWorkingHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/business/settings/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business/settings/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, updateHours.ErrForbidden):
			h.logger.Warn("PUT /business/settings/working-hours - Forbidden: actor_id=%d (%s)", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateHours.ErrBusinessNotFound):
			h.logger.Warn("PUT /business/settings/working-hours - Business not found for actor_id=%d", actor.ID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, updateHours.ErrInvalidInput):
			h.logger.Warn("PUT /business/settings/working-hours - Invalid hours: actor_id=%d, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /business/settings/working-hours - Failed: actor_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business/settings/working-hours - Schedule replaced: business_id=%d, days=%d",
		result.BusinessID, len(result.WorkingHours))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
