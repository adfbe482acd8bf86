package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMC-AppointmentService/pkg/types"
)

func mustSchedule(t *testing.T) Schedule {
	t.Helper()
	schedule, err := NewSchedule("UTC", "09:00", "17:00", 30)
	require.NoError(t, err)
	return schedule
}

func TestNewSchedule_Invalid(t *testing.T) {
	_, err := NewSchedule("Atlantis/Nowhere", "09:00", "17:00", 30)
	assert.Error(t, err)

	_, err = NewSchedule("UTC", "9am", "17:00", 30)
	assert.Error(t, err)

	_, err = NewSchedule("UTC", "17:00", "09:00", 30)
	assert.Error(t, err)

	_, err = NewSchedule("UTC", "09:00", "17:00", 0)
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	schedule := mustSchedule(t)

	moment := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	start, end := schedule.DayBounds(moment)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), end)
}

func TestDayBounds_OtherTimezone(t *testing.T) {
	schedule, err := NewSchedule("America/New_York", "09:00", "17:00", 30)
	require.NoError(t, err)

	// 02:00 UTC 16 марта - ещё 15 марта в Нью-Йорке
	moment := time.Date(2026, 3, 16, 2, 0, 0, 0, time.UTC)
	start, end := schedule.DayBounds(moment)

	assert.Equal(t, 15, start.Day())
	assert.Equal(t, 16, end.Day())
}

func TestSlotCell_FloorsToSlotWidth(t *testing.T) {
	schedule := mustSchedule(t)

	cases := map[time.Time]types.TimeString{
		time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC):   "10:00",
		time.Date(2026, 3, 15, 10, 15, 0, 0, time.UTC):  "10:00",
		time.Date(2026, 3, 15, 10, 29, 59, 0, time.UTC): "10:00",
		time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC):  "10:30",
		time.Date(2026, 3, 15, 10, 45, 0, 0, time.UTC):  "10:30",
	}

	for moment, want := range cases {
		assert.Equal(t, want, schedule.SlotCell(moment), "moment %s", moment)
	}
}

func TestGrid_FullBusinessDay(t *testing.T) {
	schedule := mustSchedule(t)

	grid, err := schedule.Grid()
	require.NoError(t, err)

	// От 09:00 до 17:00 включительно с шагом 30 минут
	require.Len(t, grid, 17)
	assert.Equal(t, types.TimeString("09:00"), grid[0])
	assert.Equal(t, types.TimeString("09:30"), grid[1])
	assert.Equal(t, types.TimeString("17:00"), grid[16])
}

func TestGrid_Ascending(t *testing.T) {
	schedule := mustSchedule(t)

	grid, err := schedule.Grid()
	require.NoError(t, err)

	for i := 1; i < len(grid); i++ {
		assert.True(t, grid[i-1].IsBefore(grid[i]))
	}
}
