package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/DMC-AppointmentService/pkg/types"
)

// Schedule describes the fixed booking grid shared by all providers:
// business hours, the slot width and the time zone that defines day boundaries
type Schedule struct {
	Location            *time.Location
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
}

// NewSchedule builds a Schedule from configuration values
func NewSchedule(timezone, openTime, closeTime string, slotDurationMinutes int) (Schedule, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule: unknown timezone %q: %w", timezone, err)
	}

	open, err := types.NewTimeStringFromString(openTime)
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule: invalid open time: %w", err)
	}

	closeT, err := types.NewTimeStringFromString(closeTime)
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule: invalid close time: %w", err)
	}

	if !open.IsBefore(closeT) {
		return Schedule{}, fmt.Errorf("schedule: open time %s must be before close time %s", open, closeT)
	}

	if slotDurationMinutes <= 0 {
		return Schedule{}, fmt.Errorf("schedule: slot duration must be positive, got %d", slotDurationMinutes)
	}

	return Schedule{
		Location:            loc,
		OpenTime:            open,
		CloseTime:           closeT,
		SlotDurationMinutes: slotDurationMinutes,
	}, nil
}

// DayBounds returns the [start, end) boundaries of the calendar day containing
// date, in the schedule's time zone
func (s Schedule) DayBounds(date time.Time) (time.Time, time.Time) {
	local := date.In(s.Location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.Location)
	return start, start.AddDate(0, 0, 1)
}

// SlotCell maps an instant to its grid cell: time-of-day in the schedule's
// zone, floored to the slot width
// Две записи конфликтуют, если их SlotCell на одну дату совпадают
func (s Schedule) SlotCell(t time.Time) types.TimeString {
	local := t.In(s.Location)
	minutes := local.Hour()*60 + local.Minute()
	minutes -= minutes % s.SlotDurationMinutes
	return types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// Grid returns every slot cell of a business day in ascending order,
// from OpenTime to CloseTime inclusive
func (s Schedule) Grid() ([]types.TimeString, error) {
	cells := make([]types.TimeString, 0)

	cell := s.OpenTime
	for {
		if cell.IsAfter(s.CloseTime) {
			break
		}
		cells = append(cells, cell)

		next, err := cell.AddMinutes(s.SlotDurationMinutes)
		if err != nil {
			// Достигли конца суток
			break
		}
		cell = next
	}

	return cells, nil
}
