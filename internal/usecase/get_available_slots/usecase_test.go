package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	hoursRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeAppointmentRepo struct {
	booked []types.TimeString
	err    error
}

func (f *fakeAppointmentRepo) GetBookedTimes(_ context.Context, _ int64, _ time.Time) ([]types.TimeString, error) {
	return f.booked, f.err
}

type fakeHoursRepo struct {
	hours *domain.BusinessHours
	err   error

	gotDayOfWeek int
}

func (f *fakeHoursRepo) GetWorkingDay(_ context.Context, _ int64, dayOfWeek int) (*domain.BusinessHours, error) {
	f.gotDayOfWeek = dayOfWeek
	return f.hours, f.err
}

type fakeBusinessRepo struct {
	business *domain.Business
	err      error
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, _ int64) (*domain.Business, error) {
	return f.business, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2 июня 2025 — понедельник, Sunday-first индекс 1
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func mondayHours() *domain.BusinessHours {
	return &domain.BusinessHours{
		BusinessID:   3,
		DayOfWeek:    1,
		OpenTime:     "09:00",
		CloseTime:    "18:00",
		IsWorkingDay: true,
		SlotDuration: 30,
	}
}

func TestExecute_WorkingDay(t *testing.T) {
	hours := &fakeHoursRepo{hours: mondayHours()}
	uc := NewUseCase(
		&fakeAppointmentRepo{booked: []types.TimeString{"10:00"}},
		hours,
		&fakeBusinessRepo{business: &domain.Business{ID: 3}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 3, Date: monday})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Len(t, resp.Slots, 18)
	assert.Equal(t, 1, hours.gotDayOfWeek)
	require.NotNil(t, resp.Hours)
	assert.Equal(t, types.TimeString("09:00"), resp.Hours.Open)
	assert.Equal(t, 30, resp.Hours.SlotDuration)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeHoursRepo{err: hoursRepo.ErrHoursNotFound},
		&fakeBusinessRepo{business: &domain.Business{ID: 3}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 3, Date: monday})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
	assert.Nil(t, resp.Hours)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeHoursRepo{},
		&fakeBusinessRepo{err: businessRepo.ErrBusinessNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 404, Date: monday})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeHoursRepo{}, &fakeBusinessRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 0, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DefaultSlotDuration(t *testing.T) {
	hours := mondayHours()
	hours.SlotDuration = 0

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeHoursRepo{hours: hours},
		&fakeBusinessRepo{business: &domain.Business{ID: 3}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 3, Date: monday})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 18)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.Hours.SlotDuration)
}

func TestExecute_NegativeSlotDuration(t *testing.T) {
	hours := mondayHours()
	hours.SlotDuration = -15

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeHoursRepo{hours: hours},
		&fakeBusinessRepo{business: &domain.Business{ID: 3}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 3, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidSlotConfig)
}
