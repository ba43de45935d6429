package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	// или не видна вызывающему
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrBusinessNotFound возвращается, когда у вызывающего с ролью business
	// нет своего бизнеса
	ErrBusinessNotFound = errors.New("appointments.service: business not found")

	// ErrAccessDenied возвращается, когда роль не даёт доступ к операции
	ErrAccessDenied = errors.New("appointments.service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
