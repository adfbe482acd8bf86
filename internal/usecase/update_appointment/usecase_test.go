package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/DMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/DMC-AppointmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	sameDay      []*domain.Appointment
	updateErr    error

	updatedID     int64
	updatedFields appointmentRepo.UpdateFields
	rangeCalled   bool
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepo) GetByProviderAndRange(ctx context.Context, providerID int64, from, to time.Time) ([]*domain.Appointment, error) {
	f.rangeCalled = true
	return f.sameDay, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, fields appointmentRepo.UpdateFields) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedFields = fields
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUseCase(t *testing.T, repo *fakeRepo) *UseCase {
	t.Helper()
	schedule, err := domain.NewSchedule("UTC", "09:00", "17:00", 30)
	require.NoError(t, err)
	return NewUseCase(repo, fakeTxManager{}, schedule, nopLogger{})
}

func storedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:          1,
		ProviderID:  10,
		RequesterID: 20,
		ScheduledAt: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		Status:      domain.StatusPending,
	}
}

func TestExecute_UpdateNote(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{1: storedAppointment()}}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:        1,
		Principal: domain.Principal{ID: 20, Role: domain.RoleRequester},
		Note:      ptr.Ptr("bring documents"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), repo.updatedID)
	require.NotNil(t, resp.Note)
	assert.Equal(t, "bring documents", *resp.Note)
	// Без переноса времени день провайдера не читается и не блокируется
	assert.False(t, repo.rangeCalled)
}

func TestExecute_Reschedule(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{1: storedAppointment()}}
	uc := newTestUseCase(t, repo)

	newTime := time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		ID:          1,
		Principal:   domain.Principal{ID: 10, Role: domain.RoleProvider},
		ScheduledAt: &newTime,
	})
	require.NoError(t, err)

	assert.True(t, repo.rangeCalled)
	assert.True(t, resp.ScheduledAt.Equal(newTime))
}

func TestExecute_RescheduleConflict(t *testing.T) {
	repo := &fakeRepo{
		appointments: map[int64]*domain.Appointment{1: storedAppointment()},
		sameDay: []*domain.Appointment{
			{
				ID:          2,
				ProviderID:  10,
				RequesterID: 30,
				ScheduledAt: time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC),
				Status:      domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(t, repo)

	newTime := time.Date(2026, 3, 16, 14, 15, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		ID:          1,
		Principal:   domain.Principal{ID: 10, Role: domain.RoleProvider},
		ScheduledAt: &newTime,
	})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_RescheduleToOwnSlot(t *testing.T) {
	appt := storedAppointment()
	repo := &fakeRepo{
		appointments: map[int64]*domain.Appointment{1: appt},
		sameDay:      []*domain.Appointment{appt},
	}
	uc := newTestUseCase(t, repo)

	// Собственная запись слот не блокирует
	newTime := time.Date(2026, 3, 16, 10, 15, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		ID:          1,
		Principal:   domain.Principal{ID: 10, Role: domain.RoleProvider},
		ScheduledAt: &newTime,
	})
	assert.NoError(t, err)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{}}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:        42,
		Principal: domain.Principal{ID: 10, Role: domain.RoleProvider},
		Note:      ptr.Ptr("hello"),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{1: storedAppointment()}}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:        1,
		Principal: domain.Principal{ID: 99, Role: domain.RoleRequester},
		Note:      ptr.Ptr("hello"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_NoChange(t *testing.T) {
	repo := &fakeRepo{
		appointments: map[int64]*domain.Appointment{1: storedAppointment()},
		updateErr:    appointmentRepo.ErrNoRowsAffected,
	}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), &Request{
		ID:        1,
		Principal: domain.Principal{ID: 20, Role: domain.RoleRequester},
		Note:      ptr.Ptr("same note"),
	})
	assert.ErrorIs(t, err, ErrNoChange)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(t, &fakeRepo{})

	// Ни одного изменяемого поля
	_, err := uc.Execute(context.Background(), &Request{
		ID:        1,
		Principal: domain.Principal{ID: 20, Role: domain.RoleRequester},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ID:        0,
		Principal: domain.Principal{ID: 20, Role: domain.RoleRequester},
		Note:      ptr.Ptr("hello"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	zero := time.Time{}
	_, err = uc.Execute(context.Background(), &Request{
		ID:          1,
		Principal:   domain.Principal{ID: 20, Role: domain.RoleRequester},
		ScheduledAt: &zero,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
