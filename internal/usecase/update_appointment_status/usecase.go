package update_appointment_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
)

// UseCase use case для смены статуса записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	businessRepo    BusinessRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, businessRepo BusinessRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		businessRepo:    businessRepo,
		logger:          logger,
	}
}

// Execute выполняет use case смены статуса
// Владелец бизнеса может выставить любой статус записям своего бизнеса,
// клиент — только cancelled своим записям. Любая запись вне области видимости
// вызывающего выглядит как несуществующая.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointmentStatus: appointment=%d, actor=%d (%s), status=%s",
		req.AppointmentID, req.Actor.ID, req.Actor.Role, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: validation failed: %v", err)
		return nil, err
	}

	status := domain.AppointmentStatus(req.Status)

	// 2. Ветвление по роли вызывающего
	switch req.Actor.Role {
	case domain.RoleBusiness:
		return uc.executeAsBusiness(ctx, req, status)
	case domain.RoleCustomer:
		return uc.executeAsCustomer(ctx, req, status)
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Actor.Role)
	}
}

func (uc *UseCase) executeAsBusiness(ctx context.Context, req *Request, status domain.AppointmentStatus) (*Response, error) {
	// 1. Находим бизнес владельца
	biz, err := uc.businessRepo.GetByOwner(ctx, req.Actor.ID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: user id=%d has no business", req.Actor.ID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to get business for user id=%d: %v", req.Actor.ID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 2. Обновляем статус в пределах своего бизнеса
	if err := uc.appointmentRepo.UpdateStatusByBusiness(ctx, req.AppointmentID, biz.ID, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: appointment id=%d not found for business id=%d", req.AppointmentID, biz.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to update appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	// 3. Возвращаем обновлённую запись
	apt, err := uc.appointmentRepo.GetByIDForBusiness(ctx, req.AppointmentID, biz.ID)
	if err != nil {
		uc.logger.Error("UpdateAppointmentStatus: failed to reload appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAppointmentStatus: appointment id=%d set to %s by business id=%d", apt.ID, apt.Status, biz.ID)
	return toResponse(apt), nil
}

func (uc *UseCase) executeAsCustomer(ctx context.Context, req *Request, status domain.AppointmentStatus) (*Response, error) {
	// 1. Клиенту доступна только отмена
	if status != domain.StatusCancelled {
		uc.logger.Warn("UpdateAppointmentStatus: customer id=%d attempted to set status %s", req.Actor.ID, status)
		return nil, ErrForbidden
	}

	// 2. Отменяем в пределах своих записей
	if err := uc.appointmentRepo.CancelByCustomer(ctx, req.AppointmentID, req.Actor.ID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: appointment id=%d not cancellable by customer id=%d", req.AppointmentID, req.Actor.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to cancel appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
	}

	// 3. Возвращаем обновлённую запись
	apt, err := uc.appointmentRepo.GetByIDForCustomer(ctx, req.AppointmentID, req.Actor.ID)
	if err != nil {
		uc.logger.Error("UpdateAppointmentStatus: failed to reload appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAppointmentStatus: appointment id=%d cancelled by customer id=%d", apt.ID, req.Actor.ID)
	return toResponse(apt), nil
}

func toResponse(apt *domain.Appointment) *Response {
	return &Response{
		ID:         apt.ID,
		CustomerID: apt.CustomerID,
		BusinessID: apt.BusinessID,
		Date:       apt.Date,
		Time:       apt.Time,
		Status:     string(apt.Status),
		Notes:      apt.Notes,
		CreatedAt:  apt.CreatedAt,
		UpdatedAt:  apt.UpdatedAt,
	}
}
