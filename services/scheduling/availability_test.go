package scheduling

import (
	"testing"
	"time"

	"taskpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableSlotsSkipsNonWorkingDays(t *testing.T) {
	engine := NewDefaultSchedulingEngine()
	// Friday 2026-03-06 through Monday 2026-03-09.
	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	slots := engine.AvailableSlots(friday, nextMonday, models.DefaultWorkingHours(), nil)
	require.Len(t, slots, 2)
	assert.Equal(t, friday.Add(9*time.Hour), slots[0].Start)
	assert.Equal(t, friday.Add(17*time.Hour), slots[0].End)
	assert.Equal(t, nextMonday.Add(9*time.Hour), slots[1].Start)
	assert.Equal(t, nextMonday.Add(17*time.Hour), slots[1].End)
}

func TestAvailableSlotsBookingsSplitDays(t *testing.T) {
	engine := NewDefaultSchedulingEngine()
	bookings := []models.ExistingBooking{
		{Start: mondayAt(10, 0), End: mondayAt(11, 30)},
	}

	slots := engine.AvailableSlots(monday, monday, models.DefaultWorkingHours(), bookings)
	require.Len(t, slots, 2)
	assert.Equal(t, models.TimeInterval{Start: mondayAt(9, 0), End: mondayAt(10, 0)}, slots[0])
	assert.Equal(t, models.TimeInterval{Start: mondayAt(11, 30), End: mondayAt(17, 0)}, slots[1])
}

func TestAvailableSlotsMultiDayBookingBlocksEveryDaySpanned(t *testing.T) {
	engine := NewDefaultSchedulingEngine()
	tuesday := monday.AddDate(0, 0, 1)
	bookings := []models.ExistingBooking{
		{Start: mondayAt(15, 0), End: tuesday.Add(11 * time.Hour)},
	}

	slots := engine.AvailableSlots(monday, tuesday, models.DefaultWorkingHours(), bookings)
	require.Len(t, slots, 2)
	assert.Equal(t, models.TimeInterval{Start: mondayAt(9, 0), End: mondayAt(15, 0)}, slots[0])
	assert.Equal(t, models.TimeInterval{Start: tuesday.Add(11 * time.Hour), End: tuesday.Add(17 * time.Hour)}, slots[1])
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	engine := NewDefaultSchedulingEngine()
	bookings := []models.ExistingBooking{
		{Start: mondayAt(9, 30), End: mondayAt(10, 15)},
		{Start: mondayAt(13, 0), End: mondayAt(14, 0)},
	}
	end := monday.AddDate(0, 0, 13)

	first := engine.AvailableSlots(monday, end, models.DefaultWorkingHours(), bookings)
	second := engine.AvailableSlots(monday, end, models.DefaultWorkingHours(), bookings)
	assert.Equal(t, first, second)
}

func TestAvailableSlotsChronologicalOrder(t *testing.T) {
	engine := NewDefaultSchedulingEngine()
	bookings := []models.ExistingBooking{
		{Start: mondayAt(12, 0), End: mondayAt(13, 0)},
	}
	end := monday.AddDate(0, 0, 6)

	slots := engine.AvailableSlots(monday, end, models.DefaultWorkingHours(), bookings)
	require.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].End.Before(slots[i].Start) || slots[i-1].End.Equal(slots[i].Start),
			"slots out of order at %d", i)
	}
}

func TestAvailableSlotsEmptyProfile(t *testing.T) {
	engine := NewDefaultSchedulingEngine()
	slots := engine.AvailableSlots(monday, monday.AddDate(0, 0, 6), nil, nil)
	assert.Empty(t, slots)
}
