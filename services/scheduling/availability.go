// File: services/scheduling/availability.go
package scheduling

import (
	"time"

	"taskpilot/models"
)

// AvailableSlots computes the ordered free slots across every calendar day
// in [rangeStart, rangeEnd] (inclusive), given the weekly working-hours
// profile and the already-booked intervals. Results preserve day order and
// within-day chronological order. The computation is pure: identical inputs
// yield identical output.
func (e *DefaultSchedulingEngine) AvailableSlots(rangeStart, rangeEnd time.Time, hours []models.WorkingHour, bookings []models.ExistingBooking) []models.TimeInterval {
	var slots []models.TimeInterval

	for day := startOfDay(rangeStart); !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		window, ok := dayWorkingWindow(day, hours)
		if !ok {
			continue
		}

		dayEnd := day.AddDate(0, 0, 1)

		// Any overlap with the day counts, not just same-day starts, so
		// multi-day bookings block every day they span.
		var busy []models.TimeInterval
		for _, b := range bookings {
			if b.Start.Before(dayEnd) && b.End.After(day) {
				busy = append(busy, models.TimeInterval{Start: b.Start, End: b.End})
			}
		}

		slots = append(slots, freeSlotsForDay(day, window, busy)...)
	}

	return slots
}
