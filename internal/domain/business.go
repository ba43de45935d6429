package domain

import "time"

// Business represents a business that accepts appointments.
// Reference entity: the booking core only needs its identity and the
// owner link for authorization scoping.
type Business struct {
	ID          int64
	UserID      int64 // владелец (ID пользователя из identity-сервиса)
	Name        string
	Description *string
	Address     *string
	Phone       *string
	CreatedAt   time.Time
}
