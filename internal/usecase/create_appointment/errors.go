package create_appointment

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_appointment: business not found")

	// ErrSlotTaken возвращается, когда слот уже занят активной записью
	// (любой статус, кроме denied, включая cancelled)
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
