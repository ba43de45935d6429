package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BusinessID int64  `json:"business_id"`
	Date       string `json:"date"` // "2025-06-02"
	Time       string `json:"time"` // "10:30"
	Notes      string `json:"notes,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID int64) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID: customerID,
		BusinessID: r.BusinessID,
		Date:       date,
		Time:       t,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
