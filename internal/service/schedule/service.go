package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// Service сервис чтения расписаний бизнесов
type Service struct {
	hoursRepo    BusinessHoursRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(hoursRepo BusinessHoursRepository, businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		hoursRepo:    hoursRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// GetByBusiness возвращает расписание бизнеса по дням недели.
// Публичная операция, доступна без авторизации.
func (s *Service) GetByBusiness(ctx context.Context, businessID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByBusiness: business=%d", businessID)

	if businessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetByBusiness: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetByBusiness: failed to get business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	hours, err := s.hoursRepo.GetByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("GetByBusiness: failed to get hours for business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	resp := &models.ScheduleResponse{
		BusinessID:   businessID,
		WorkingHours: make([]models.DaySchedule, 0, len(hours)),
	}
	for _, h := range hours {
		name, err := domain.DayName(h.DayOfWeek)
		if err != nil {
			s.logger.Error("GetByBusiness: corrupt day_of_week=%d for business id=%d", h.DayOfWeek, businessID)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		resp.WorkingHours = append(resp.WorkingHours, models.DaySchedule{
			Day:          name,
			Open:         h.OpenTime,
			Close:        h.CloseTime,
			IsOpen:       h.IsWorkingDay,
			SlotDuration: h.EffectiveSlotDuration(),
		})
	}

	return resp, nil
}
