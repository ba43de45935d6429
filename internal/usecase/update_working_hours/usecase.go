package update_working_hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
)

// UseCase use case для замены расписания бизнеса
type UseCase struct {
	hoursRepo    BusinessHoursRepository
	businessRepo BusinessRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hoursRepo BusinessHoursRepository,
	businessRepo BusinessRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		hoursRepo:    hoursRepo,
		businessRepo: businessRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case полной замены расписания.
// Старое расписание удаляется и переданный набор дней вставляется
// в одной транзакции, промежуточное пустое состояние снаружи не видно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateWorkingHours: actor=%d (%s), days=%d", req.Actor.ID, req.Actor.Role, len(req.WorkingHours))

	// 1. Расписание меняет только владелец бизнеса
	if req.Actor.Role != domain.RoleBusiness {
		uc.logger.Warn("UpdateWorkingHours: role %s is not allowed to manage hours", req.Actor.Role)
		return nil, ErrForbidden
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateWorkingHours: validation failed: %v", err)
		return nil, err
	}

	// 3. Находим бизнес владельца
	biz, err := uc.businessRepo.GetByOwner(ctx, req.Actor.ID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("UpdateWorkingHours: user id=%d has no business", req.Actor.ID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("UpdateWorkingHours: failed to get business for user id=%d: %v", req.Actor.ID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Собираем доменные записи расписания
	hours := make([]*domain.BusinessHours, 0, len(req.WorkingHours))
	for _, day := range req.WorkingHours {
		idx, err := domain.DayIndex(day.Day)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, day.Day)
		}
		hours = append(hours, &domain.BusinessHours{
			BusinessID:   biz.ID,
			DayOfWeek:    idx,
			OpenTime:     day.Open,
			CloseTime:    day.Close,
			IsWorkingDay: day.IsOpen,
			SlotDuration: day.SlotDuration,
		})
	}

	// 5. Заменяем расписание в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		return uc.hoursRepo.ReplaceForBusiness(txCtx, biz.ID, hours)
	})
	if err != nil {
		uc.logger.Error("UpdateWorkingHours: failed to replace hours for business id=%d: %v", biz.ID, err)
		return nil, fmt.Errorf("%w: failed to replace hours: %v", ErrInternal, err)
	}

	// 6. Перечитываем сохранённое расписание
	saved, err := uc.hoursRepo.GetByBusiness(ctx, biz.ID)
	if err != nil {
		uc.logger.Error("UpdateWorkingHours: failed to reload hours for business id=%d: %v", biz.ID, err)
		return nil, fmt.Errorf("%w: failed to reload hours: %v", ErrInternal, err)
	}

	resp := &Response{BusinessID: biz.ID, WorkingHours: make([]DayConfig, 0, len(saved))}
	for _, h := range saved {
		name, err := domain.DayName(h.DayOfWeek)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		resp.WorkingHours = append(resp.WorkingHours, DayConfig{
			Day:          name,
			Open:         h.OpenTime,
			Close:        h.CloseTime,
			IsOpen:       h.IsWorkingDay,
			SlotDuration: h.SlotDuration,
		})
	}

	uc.logger.Info("UpdateWorkingHours: replaced schedule for business id=%d, days=%d", biz.ID, len(saved))
	return resp, nil
}
