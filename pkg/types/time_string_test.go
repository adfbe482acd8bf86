package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	cases := []string{"", "9:30:00", "25:00", "09:75", "morning"}
	for _, c := range cases {
		_, err := NewTimeStringFromString(c)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", c)
	}
}

func TestNewTimeString_FromTime(t *testing.T) {
	moment := time.Date(2026, 3, 15, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestMinutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), next)

	next, err = ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), next)
}

func TestAddMinutes_PastMidnight(t *testing.T) {
	ts := TimeString("23:45")
	_, err := ts.AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("17:00")))
	assert.False(t, TimeString("17:00").IsBefore(TimeString("09:00")))
	assert.True(t, TimeString("17:00").IsAfter(TimeString("09:00")))
	assert.False(t, TimeString("09:00").IsAfter(TimeString("09:00")))
}

func TestIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
