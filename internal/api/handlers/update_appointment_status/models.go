package update_appointment_status

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateStatus "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	BusinessID int64  `json:"business_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		BusinessID: resp.BusinessID,
		Date:       resp.Date.Format(domain.DateFormat),
		Time:       resp.Time.String(),
		Status:     resp.Status,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
