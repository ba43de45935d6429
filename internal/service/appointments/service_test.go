package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeAppointmentRepo struct {
	apt    *domain.Appointment
	getErr error

	list    []*domain.Appointment
	listErr error

	counts map[domain.AppointmentStatus]int

	gotFilter domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByIDForCustomer(_ context.Context, _, _ int64) (*domain.Appointment, error) {
	return f.apt, f.getErr
}

func (f *fakeAppointmentRepo) GetByIDForBusiness(_ context.Context, _, _ int64) (*domain.Appointment, error) {
	return f.apt, f.getErr
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = filter
	return f.list, f.listErr
}

func (f *fakeAppointmentRepo) CountByStatus(_ context.Context, filter domain.AppointmentsFilter) (map[domain.AppointmentStatus]int, error) {
	f.gotFilter = filter
	return f.counts, nil
}

type fakeBusinessRepo struct {
	business *domain.Business
	err      error
}

func (f *fakeBusinessRepo) GetByOwner(_ context.Context, _ int64) (*domain.Business, error) {
	return f.business, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:         42,
		CustomerID: 7,
		BusinessID: 3,
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("10:30"),
		Status:     domain.StatusApproved,
	}
}

func TestGetByID_Customer(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{apt: sampleAppointment()}, &fakeBusinessRepo{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), &models.GetAppointmentRequest{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 7, Role: domain.RoleCustomer},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "approved", resp.Status)
}

func TestGetByID_ForeignLooksMissing(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}, &fakeBusinessRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), &models.GetAppointmentRequest{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 99, Role: domain.RoleCustomer},
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_CustomerScopedFilter(t *testing.T) {
	repo := &fakeAppointmentRepo{list: []*domain.Appointment{sampleAppointment()}}
	svc := NewService(repo, &fakeBusinessRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Actor: domain.Actor{ID: 7, Role: domain.RoleCustomer},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Appointments, 1)
	require.NotNil(t, repo.gotFilter.CustomerID)
	assert.Equal(t, int64(7), *repo.gotFilter.CustomerID)
	assert.Nil(t, repo.gotFilter.BusinessID)
	assert.Equal(t, domain.DefaultListLimit, repo.gotFilter.Limit)
}

func TestList_BusinessScopedFilter(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := NewService(repo, &fakeBusinessRepo{business: &domain.Business{ID: 3, UserID: 15}}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Actor: domain.Actor{ID: 15, Role: domain.RoleBusiness},
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.BusinessID)
	assert.Equal(t, int64(3), *repo.gotFilter.BusinessID)
	assert.Nil(t, repo.gotFilter.CustomerID)
}

func TestList_StatusFilterValidated(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeBusinessRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Actor:  domain.Actor{ID: 7, Role: domain.RoleCustomer},
		Status: ptr.Ptr("confirmed"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_LimitClamped(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := NewService(repo, &fakeBusinessRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Actor: domain.Actor{ID: 7, Role: domain.RoleCustomer},
		Limit: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxListLimit, repo.gotFilter.Limit)
}

func TestStats_Business(t *testing.T) {
	repo := &fakeAppointmentRepo{counts: map[domain.AppointmentStatus]int{
		domain.StatusPending:   2,
		domain.StatusApproved:  5,
		domain.StatusCancelled: 1,
	}}
	svc := NewService(repo, &fakeBusinessRepo{business: &domain.Business{ID: 3}}, nopLogger{})

	resp, err := svc.Stats(context.Background(), &models.StatsRequest{
		Actor: domain.Actor{ID: 15, Role: domain.RoleBusiness},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Pending)
	assert.Equal(t, 5, resp.Approved)
	assert.Equal(t, 0, resp.Denied)
	assert.Equal(t, 1, resp.Cancelled)
	assert.Equal(t, 8, resp.Total)
}

func TestStats_CustomerDenied(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeBusinessRepo{}, nopLogger{})

	_, err := svc.Stats(context.Background(), &models.StatsRequest{
		Actor: domain.Actor{ID: 7, Role: domain.RoleCustomer},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestStats_NoBusinessZeroCounts(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeBusinessRepo{err: businessRepo.ErrBusinessNotFound}, nopLogger{})

	resp, err := svc.Stats(context.Background(), &models.StatsRequest{
		Actor: domain.Actor{ID: 15, Role: domain.RoleBusiness},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, 0, resp.Pending)
	assert.Equal(t, 0, resp.Approved)
	assert.Equal(t, 0, resp.Denied)
	assert.Equal(t, 0, resp.Cancelled)
}

func TestList_NoBusinessEmpty(t *testing.T) {
	repo := &fakeAppointmentRepo{list: []*domain.Appointment{sampleAppointment()}}
	svc := NewService(repo, &fakeBusinessRepo{err: businessRepo.ErrBusinessNotFound}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Actor: domain.Actor{ID: 15, Role: domain.RoleBusiness},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
	assert.Equal(t, domain.DefaultListLimit, resp.Limit)
	assert.Equal(t, 0, resp.Offset)
	// репозиторий не должен вызываться
	assert.Nil(t, repo.gotFilter.BusinessID)
	assert.Nil(t, repo.gotFilter.CustomerID)
}

func TestGetByID_NoBusinessNotFound(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{apt: sampleAppointment()}, &fakeBusinessRepo{err: businessRepo.ErrBusinessNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), &models.GetAppointmentRequest{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 15, Role: domain.RoleBusiness},
	})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}
