package update_working_hours

import "errors"

var (
	// ErrForbidden возвращается, когда роль вызывающего не позволяет
	// управлять расписанием
	ErrForbidden = errors.New("update_working_hours: operation not allowed for this role")

	// ErrBusinessNotFound возвращается, когда у вызывающего с ролью business
	// нет своего бизнеса
	ErrBusinessNotFound = errors.New("update_working_hours: business not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_working_hours: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_working_hours: internal error")
)
