package update_working_hours

import (
	"context"

	updateHours "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_working_hours"
)

type UpdateWorkingHoursUseCase interface {
	Execute(ctx context.Context, req *updateHours.Request) (*updateHours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
