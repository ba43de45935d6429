package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	businessRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeAppointmentRepo struct {
	blocking    bool
	blockingErr error
	created     *domain.Appointment
	createErr   error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *apt
	out.ID = 101
	out.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeAppointmentRepo) HasBlockingAppointment(_ context.Context, _ int64, _ time.Time, _ types.TimeString) (bool, error) {
	return f.blocking, f.blockingErr
}

type fakeBusinessRepo struct {
	business *domain.Business
	err      error
}

func (f *fakeBusinessRepo) GetByID(_ context.Context, _ int64) (*domain.Business, error) {
	return f.business, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		CustomerID: 7,
		BusinessID: 3,
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("10:30"),
		Notes:      "стрижка",
	}
}

func TestExecute_Success(t *testing.T) {
	aptRepo := &fakeAppointmentRepo{}
	uc := NewUseCase(aptRepo, &fakeBusinessRepo{business: &domain.Business{ID: 3}}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, types.TimeString("10:30"), resp.Time)
	require.NotNil(t, aptRepo.created)
	assert.Equal(t, domain.StatusPending, aptRepo.created.Status)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeBusinessRepo{err: businessRepo.ErrBusinessNotFound}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_SlotTaken(t *testing.T) {
	aptRepo := &fakeAppointmentRepo{blocking: true}
	uc := NewUseCase(aptRepo, &fakeBusinessRepo{business: &domain.Business{ID: 3}}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, aptRepo.created, "appointment must not be created when slot is taken")
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero customer", func(r *Request) { r.CustomerID = 0 }},
		{"negative business", func(r *Request) { r.BusinessID = -1 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.Time = "" }},
		{"bad time format", func(r *Request) { r.Time = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeAppointmentRepo{}, &fakeBusinessRepo{business: &domain.Business{ID: 3}}, fakeTxManager{}, nopLogger{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepoFailure(t *testing.T) {
	aptRepo := &fakeAppointmentRepo{blockingErr: errors.New("connection reset")}
	uc := NewUseCase(aptRepo, &fakeBusinessRepo{business: &domain.Business{ID: 3}}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
