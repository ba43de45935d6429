package update_appointment_status

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	// или не принадлежит вызывающему (намеренно неотличимо от несуществующей)
	ErrAppointmentNotFound = errors.New("update_appointment_status: appointment not found")

	// ErrBusinessNotFound возвращается, когда у вызывающего с ролью business
	// нет своего бизнеса
	ErrBusinessNotFound = errors.New("update_appointment_status: business not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("update_appointment_status: invalid status")

	// ErrForbidden возвращается, когда роль не позволяет данный переход
	ErrForbidden = errors.New("update_appointment_status: operation not allowed for this role")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment_status: internal error")
)
