// File: services/scheduling/freebusy.go
package scheduling

import (
	"sort"
	"time"

	"taskpilot/models"
	"taskpilot/utils"

	"go.uber.org/zap"
)

// freeSlotsForDay computes the ordered free slots strictly inside the day's
// working window, given the busy intervals overlapping that day.
//
// The window boundaries are seeded as sentinel busy blocks (midnight to work
// start, work end to midnight) so that time outside working hours is never
// offered. Busy intervals with end <= start are skipped, not fatal.
func freeSlotsForDay(day time.Time, window models.TimeInterval, busy []models.TimeInterval) []models.TimeInterval {
	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	blocks := make([]models.TimeInterval, 0, len(busy)+2)
	if dayStart.Before(window.Start) {
		blocks = append(blocks, models.TimeInterval{Start: dayStart, End: window.Start})
	}
	if window.End.Before(dayEnd) {
		blocks = append(blocks, models.TimeInterval{Start: window.End, End: dayEnd})
	}
	for _, b := range busy {
		if !b.Valid() {
			utils.GetLogger().Warn("Skipping invalid busy interval",
				zap.Time("start", b.Start), zap.Time("end", b.End))
			continue
		}
		blocks = append(blocks, b)
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start.Before(blocks[j].Start)
	})

	// Sweep and merge into a minimal set of non-overlapping busy blocks.
	merged := make([]models.TimeInterval, 0, len(blocks))
	for _, b := range blocks {
		if len(merged) == 0 {
			merged = append(merged, b)
			continue
		}
		last := &merged[len(merged)-1]
		if !b.Start.After(last.End) {
			if b.End.After(last.End) {
				last.End = b.End
			}
		} else {
			merged = append(merged, b)
		}
	}

	// Walk the merged blocks and emit the gaps between them.
	var free []models.TimeInterval
	cursor := dayStart
	for _, b := range merged {
		if cursor.Before(b.Start) {
			free = append(free, models.TimeInterval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(dayEnd) {
		free = append(free, models.TimeInterval{Start: cursor, End: dayEnd})
	}

	// Keep only slots fully inside the working window with positive duration.
	var result []models.TimeInterval
	for _, s := range free {
		if s.Valid() && !s.Start.Before(window.Start) && !s.End.After(window.End) {
			result = append(result, s)
		}
	}
	return result
}
