package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// Service сервис чтения записей на приём
type Service struct {
	appointmentRepo AppointmentRepository
	businessRepo    BusinessRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		businessRepo:    businessRepo,
		logger:          logger,
	}
}

// GetByID возвращает одну запись в пределах области видимости вызывающего:
// клиент видит свои записи, владелец бизнеса — записи своего бизнеса.
// Чужая запись неотличима от несуществующей.
func (s *Service) GetByID(ctx context.Context, req *models.GetAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: appointment=%d, actor=%d (%s)", req.AppointmentID, req.Actor.ID, req.Actor.Role)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	var (
		apt *domain.Appointment
		err error
	)

	switch req.Actor.Role {
	case domain.RoleCustomer:
		apt, err = s.appointmentRepo.GetByIDForCustomer(ctx, req.AppointmentID, req.Actor.ID)
	case domain.RoleBusiness:
		biz, bizErr := s.resolveBusiness(ctx, req.Actor.ID)
		if bizErr != nil {
			return nil, bizErr
		}
		apt, err = s.appointmentRepo.GetByIDForBusiness(ctx, req.AppointmentID, biz.ID)
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Actor.Role)
	}

	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not visible to actor id=%d", req.AppointmentID, req.Actor.ID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	return toAppointmentResponse(apt), nil
}

// List возвращает записи вызывающего с фильтрами по статусу и дате.
// Владелец без бизнеса получает пустой список, а не ошибку.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.ListAppointmentsResponse, error) {
	s.logger.Info("List: actor=%d (%s), limit=%d, offset=%d", req.Actor.ID, req.Actor.Role, req.Limit, req.Offset)

	filter, err := s.buildFilter(ctx, req)
	if err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			limit, offset := normalizePaging(req.Limit, req.Offset)
			return &models.ListAppointmentsResponse{
				Appointments: []models.AppointmentResponse{},
				Limit:        limit,
				Offset:       offset,
			}, nil
		}
		return nil, err
	}

	items, err := s.appointmentRepo.GetWithFilter(ctx, *filter)
	if err != nil {
		s.logger.Error("List: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	resp := &models.ListAppointmentsResponse{
		Appointments: make([]models.AppointmentResponse, 0, len(items)),
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	}
	for _, apt := range items {
		resp.Appointments = append(resp.Appointments, *toAppointmentResponse(apt))
	}

	return resp, nil
}

// Stats возвращает владельцу бизнеса количество записей по статусам.
// Владелец без бизнеса получает нулевые счётчики, а не ошибку.
func (s *Service) Stats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error) {
	s.logger.Info("Stats: actor=%d (%s)", req.Actor.ID, req.Actor.Role)

	if req.Actor.Role != domain.RoleBusiness {
		s.logger.Warn("Stats: role %s is not allowed to view stats", req.Actor.Role)
		return nil, ErrAccessDenied
	}

	biz, err := s.resolveBusiness(ctx, req.Actor.ID)
	if err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			return &models.StatsResponse{}, nil
		}
		return nil, err
	}

	counts, err := s.appointmentRepo.CountByStatus(ctx, domain.AppointmentsFilter{BusinessID: &biz.ID})
	if err != nil {
		s.logger.Error("Stats: failed to count appointments for business id=%d: %v", biz.ID, err)
		return nil, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}

	resp := &models.StatsResponse{
		BusinessID: biz.ID,
		Pending:    counts[domain.StatusPending],
		Approved:   counts[domain.StatusApproved],
		Denied:     counts[domain.StatusDenied],
		Cancelled:  counts[domain.StatusCancelled],
	}
	resp.Total = resp.Pending + resp.Approved + resp.Denied + resp.Cancelled

	return resp, nil
}

// buildFilter собирает фильтр списка, привязанный к области видимости вызывающего
func (s *Service) buildFilter(ctx context.Context, req *models.ListAppointmentsRequest) (*domain.AppointmentsFilter, error) {
	limit, offset := normalizePaging(req.Limit, req.Offset)
	filter := &domain.AppointmentsFilter{
		Limit:  limit,
		Offset: offset,
	}

	switch req.Actor.Role {
	case domain.RoleCustomer:
		filter.CustomerID = &req.Actor.ID
	case domain.RoleBusiness:
		biz, err := s.resolveBusiness(ctx, req.Actor.ID)
		if err != nil {
			return nil, err
		}
		filter.BusinessID = &biz.ID
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Actor.Role)
	}

	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = ptr.Ptr(status)
	}

	if req.Date != nil {
		filter.Date = req.Date
	}

	return filter, nil
}

// normalizePaging приводит limit/offset к допустимым значениям
func normalizePaging(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *Service) resolveBusiness(ctx context.Context, userID int64) (*domain.Business, error) {
	biz, err := s.businessRepo.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("resolveBusiness: user id=%d has no business", userID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("resolveBusiness: failed to get business for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	return biz, nil
}

func toAppointmentResponse(apt *domain.Appointment) *models.AppointmentResponse {
	return &models.AppointmentResponse{
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
