package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// GetAppointmentRequest запрос одной записи от имени вызывающего
type GetAppointmentRequest struct {
	AppointmentID int64
	Actor         domain.Actor
}

// ListAppointmentsRequest запрос списка записей вызывающего
type ListAppointmentsRequest struct {
	Actor  domain.Actor
	Status *string    // фильтр по статусу (опционально)
	Date   *time.Time // фильтр по дате (опционально)
	Limit  int
	Offset int
}

// StatsRequest запрос сводки по статусам для владельца бизнеса
type StatsRequest struct {
	Actor domain.Actor
}

// AppointmentResponse одна запись в ответе
type AppointmentResponse struct {
	ID         int64
	CustomerID int64
	BusinessID int64
	Date       time.Time
	Time       types.TimeString
	Status     string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ListAppointmentsResponse список записей с параметрами страницы
type ListAppointmentsResponse struct {
	Appointments []AppointmentResponse
	Limit        int
	Offset       int
}

// StatsResponse количество записей бизнеса в каждом статусе
type StatsResponse struct {
	BusinessID int64
	Total      int
	Pending    int
	Approved   int
	Denied     int
	Cancelled  int
}
