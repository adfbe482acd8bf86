package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlocksSlot(t *testing.T) {
	cases := map[AppointmentStatus]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCompleted: true,
		StatusCancelled: false,
	}

	for status, want := range cases {
		appt := &Appointment{Status: status}
		assert.Equal(t, want, appt.BlocksSlot(), "status %s", status)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCancelled}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsTerminal())
}

func TestIsParticipant(t *testing.T) {
	appt := &Appointment{ProviderID: 10, RequesterID: 20}

	assert.True(t, appt.IsParticipant(Principal{ID: 10, Role: RoleProvider}))
	assert.True(t, appt.IsParticipant(Principal{ID: 20, Role: RoleRequester}))

	// ID совпадает, но роль другой стороны - не участник
	assert.False(t, appt.IsParticipant(Principal{ID: 20, Role: RoleProvider}))
	assert.False(t, appt.IsParticipant(Principal{ID: 10, Role: RoleRequester}))

	assert.False(t, appt.IsParticipant(Principal{ID: 99, Role: RoleProvider}))
	assert.False(t, appt.IsParticipant(Principal{ID: 99, Role: RoleRequester}))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("provider")
	assert.NoError(t, err)
	assert.Equal(t, RoleProvider, role)

	role, err = ParseRole("requester")
	assert.NoError(t, err)
	assert.Equal(t, RoleRequester, role)

	_, err = ParseRole("admin")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
