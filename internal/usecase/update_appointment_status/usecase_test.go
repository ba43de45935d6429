package update_appointment_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeAppointmentRepo struct {
	apt *domain.Appointment

	updateErr error
	cancelErr error

	updateCalls     int
	updatedStatus   domain.AppointmentStatus
	updatedBusiness int64
	cancelledBy     int64
}

func (f *fakeAppointmentRepo) UpdateStatusByBusiness(_ context.Context, _, businessID int64, status domain.AppointmentStatus) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = status
	f.updatedBusiness = businessID
	f.apt.Status = status
	return nil
}

func (f *fakeAppointmentRepo) CancelByCustomer(_ context.Context, _, customerID int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledBy = customerID
	f.apt.Status = domain.StatusCancelled
	return nil
}

func (f *fakeAppointmentRepo) GetByIDForBusiness(_ context.Context, _, _ int64) (*domain.Appointment, error) {
	return f.apt, nil
}

func (f *fakeAppointmentRepo) GetByIDForCustomer(_ context.Context, _, _ int64) (*domain.Appointment, error) {
	return f.apt, nil
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
		Status:     domain.StatusPending,
	}
}

func TestExecute_BusinessApproves(t *testing.T) {
	repo := &fakeAppointmentRepo{apt: sampleAppointment()}
	uc := NewUseCase(repo, &fakeBusinessRepo{business: &domain.Business{ID: 3, UserID: 15}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 15, Role: domain.RoleBusiness},
		Status:        "approved",
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, domain.StatusApproved, repo.updatedStatus)
	assert.Equal(t, int64(3), repo.updatedBusiness, "update must be scoped to the owner's business")
}

func TestExecute_BusinessAnyStatusAllowed(t *testing.T) {
	for _, status := range []string{"pending", "approved", "denied", "cancelled"} {
		t.Run(status, func(t *testing.T) {
			repo := &fakeAppointmentRepo{apt: sampleAppointment()}
			uc := NewUseCase(repo, &fakeBusinessRepo{business: &domain.Business{ID: 3}}, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{
				AppointmentID: 42,
				Actor:         domain.Actor{ID: 15, Role: domain.RoleBusiness},
				Status:        status,
			})
			require.NoError(t, err)
			assert.Equal(t, status, resp.Status)
		})
	}
}

func TestExecute_CustomerCancels(t *testing.T) {
	repo := &fakeAppointmentRepo{apt: sampleAppointment()}
	uc := NewUseCase(repo, &fakeBusinessRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 7, Role: domain.RoleCustomer},
		Status:        "cancelled",
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, int64(7), repo.cancelledBy)
}

func TestExecute_CustomerCannotApprove(t *testing.T) {
	repo := &fakeAppointmentRepo{apt: sampleAppointment()}
	uc := NewUseCase(repo, &fakeBusinessRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 7, Role: domain.RoleCustomer},
		Status:        "approved",
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, repo.cancelledBy)
}

func TestExecute_InvalidStatus(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{apt: sampleAppointment()}, &fakeBusinessRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 15, Role: domain.RoleBusiness},
		Status:        "confirmed",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestExecute_ForeignAppointmentLooksMissing(t *testing.T) {
	repo := &fakeAppointmentRepo{apt: sampleAppointment(), updateErr: appointmentRepo.ErrAppointmentNotFound}
	uc := NewUseCase(repo, &fakeBusinessRepo{business: &domain.Business{ID: 9}}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 15, Role: domain.RoleBusiness},
		Status:        "denied",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_CustomerRecancelNotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{apt: sampleAppointment(), cancelErr: appointmentRepo.ErrAppointmentNotFound}
	uc := NewUseCase(repo, &fakeBusinessRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 7, Role: domain.RoleCustomer},
		Status:        "cancelled",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_UserWithoutBusinessNotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{apt: sampleAppointment()}
	uc := NewUseCase(repo, &fakeBusinessRepo{err: businessRepo.ErrBusinessNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 42,
		Actor:         domain.Actor{ID: 99, Role: domain.RoleBusiness},
		Status:        "approved",
	})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
	assert.Zero(t, repo.updateCalls)
}
