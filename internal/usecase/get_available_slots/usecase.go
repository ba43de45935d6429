package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	hoursRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/businesshours"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	hoursRepo       BusinessHoursRepository
	businessRepo    BusinessRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	hoursRepo BusinessHoursRepository,
	businessRepo BusinessRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		hoursRepo:       hoursRepo,
		businessRepo:    businessRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, date=%s",
		req.BusinessID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование бизнеса
	if _, err := uc.businessRepo.GetByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Получаем рабочие часы на день недели даты (Sunday-first индекс)
	dayOfWeek := domain.DayOfWeek(req.Date)
	hours, err := uc.hoursRepo.GetWorkingDay(ctx, req.BusinessID, dayOfWeek)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			// Нерабочий день — пустой список слотов, Closed=true.
			// Отличается от "все слоты заняты".
			uc.logger.Info("GetAvailableSlots: business=%d is closed on day_of_week=%d",
				req.BusinessID, dayOfWeek)
			return &Response{
				BusinessID: req.BusinessID,
				Date:       req.Date,
				Closed:     true,
				Slots:      []domain.Slot{},
			}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	// 4. Получаем занятые времена на дату (все статусы, кроме cancelled)
	bookedTimes, err := uc.appointmentRepo.GetBookedTimes(ctx, req.BusinessID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты
	slots, err := computeSlots(hours, bookedTimes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%d, date=%s",
		len(slots), req.BusinessID, req.Date.Format(domain.DateFormat))

	return &Response{
		BusinessID: req.BusinessID,
		Date:       req.Date,
		Closed:     false,
		Slots:      slots,
		Hours: &HoursInfo{
			Open:         hours.OpenTime,
			Close:        hours.CloseTime,
			SlotDuration: hours.EffectiveSlotDuration(),
		},
	}, nil
}
