package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultListLimit           = 20
	MaxListLimit               = 100
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MaxNotesLength         = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SlotBookedStatuses статусы, при которых запись занимает слот в выдаче
// доступных слотов. Исключается только cancelled.
var SlotBookedStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusDenied,
}

// CreationBlockingStatuses статусы, при которых запись блокирует создание
// новой записи на то же (business, date, time). Исключается только denied.
// Предикаты намеренно разные: отклонённая запись освобождает слот для
// нового бронирования, отменённая — нет, хотя в списке слотов она
// показывается свободной. Поведение закреплено тестами, не унифицировать
// без решения владельца продукта.
var CreationBlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusCancelled,
}
