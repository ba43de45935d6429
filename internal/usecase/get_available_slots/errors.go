package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("get_available_slots: business not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidSlotConfig возвращается при некорректной конфигурации слотов
	// (отрицательная длительность зациклила бы генерацию)
	ErrInvalidSlotConfig = errors.New("get_available_slots: invalid slot configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
