package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	"github.com/m04kA/DMC-AppointmentService/internal/integrations/identityservice"
	"github.com/m04kA/DMC-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeRepo) GetByProviderAndRange(ctx context.Context, providerID int64, from, to time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeIdentity struct {
	missing bool
}

func (f *fakeIdentity) ResolvePrincipal(ctx context.Context, id int64, role domain.Role) (*identityservice.PrincipalInfo, error) {
	if f.missing {
		return nil, identityservice.ErrPrincipalNotFound
	}
	return &identityservice.PrincipalInfo{ID: id, Role: string(role)}, nil
}

func newTestUseCase(t *testing.T, repo *fakeRepo, identity *fakeIdentity) *UseCase {
	t.Helper()
	schedule, err := domain.NewSchedule("UTC", "09:00", "17:00", 30)
	require.NoError(t, err)
	return NewUseCase(repo, identity, schedule, nopLogger{})
}

func TestExecute_EmptyDayReturnsFullGrid(t *testing.T) {
	uc := newTestUseCase(t, &fakeRepo{}, &fakeIdentity{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: 10,
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 17)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[16])
}

func TestExecute_OccupiedSlotsAreExcluded(t *testing.T) {
	repo := &fakeRepo{
		appointments: []*domain.Appointment{
			{ID: 1, ProviderID: 10, ScheduledAt: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC), Status: domain.StatusPending},
			{ID: 2, ProviderID: 10, ScheduledAt: time.Date(2026, 3, 16, 14, 15, 0, 0, time.UTC), Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(t, repo, &fakeIdentity{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: 10,
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 15)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	// 14:15 попадает в ячейку 14:00
	assert.NotContains(t, resp.Slots, types.TimeString("14:00"))
	assert.Contains(t, resp.Slots, types.TimeString("14:30"))
}

func TestExecute_CancelledAppointmentStillBlocksSlot(t *testing.T) {
	repo := &fakeRepo{
		appointments: []*domain.Appointment{
			{ID: 1, ProviderID: 10, ScheduledAt: time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC), Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(t, repo, &fakeIdentity{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: 10,
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Отменённая запись не показывается как свободный слот
	require.Len(t, resp.Slots, 16)
	assert.NotContains(t, resp.Slots, types.TimeString("11:00"))
}

func TestExecute_SlotsAscending(t *testing.T) {
	uc := newTestUseCase(t, &fakeRepo{}, &fakeIdentity{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProviderID: 10,
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].IsBefore(resp.Slots[i]))
	}
}

func TestExecute_ProviderNotFound(t *testing.T) {
	uc := newTestUseCase(t, &fakeRepo{}, &fakeIdentity{missing: true})

	_, err := uc.Execute(context.Background(), &Request{
		ProviderID: 42,
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(t, &fakeRepo{}, &fakeIdentity{})

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
