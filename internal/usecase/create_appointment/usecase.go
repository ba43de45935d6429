package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	businessRepo    BusinessRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	businessRepo BusinessRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		businessRepo:    businessRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения двойного бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, business=%d, date=%s, time=%s",
		req.CustomerID, req.BusinessID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование бизнеса
	if _, err := uc.businessRepo.GetByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateAppointment: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Проверка конфликта и создание в одной сериализуемой транзакции
	var created *domain.Appointment
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.appointmentRepo.HasBlockingAppointment(txCtx, req.BusinessID, req.Date, req.Time)
		if err != nil {
			return fmt.Errorf("failed to check slot: %w", err)
		}
		if taken {
			return ErrSlotTaken
		}

		apt := &domain.Appointment{
			CustomerID: req.CustomerID,
			BusinessID: req.BusinessID,
			Date:       req.Date,
			Time:       req.Time,
			Status:     domain.StatusPending,
			Notes:      req.Notes,
		}

		created, err = uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: slot business=%d date=%s time=%s already taken",
				req.BusinessID, req.Date.Format(domain.DateFormat), req.Time)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, status=%s", created.ID, created.Status)

	return &Response{
		ID:         created.ID,
		CustomerID: created.CustomerID,
		BusinessID: created.BusinessID,
		Date:       created.Date,
		Time:       created.Time,
		Status:     string(created.Status),
		Notes:      created.Notes,
		CreatedAt:  created.CreatedAt,
		UpdatedAt:  created.UpdatedAt,
	}, nil
}
