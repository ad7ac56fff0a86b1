// File: services/scheduling/scorer.go
package scheduling

import (
	"math"
	"strings"
	"time"

	"taskpilot/models"
)

// Scoring weights. Deadline pressure is a soft constraint: placing a task
// after its deadline is heavily penalized but never forbidden.
const (
	deadlineMissedPenalty    = -1000
	deadlineTightPenalty     = -500
	deadlineWithin12hBonus   = 60
	deadlineWithin24hBonus   = 40
	preferredBandBonus       = 30
	preferredClockBonus      = 50
	groupPreferredBandBonus  = 20
	groupPreferredClockBonus = 20
	travelTooTightPenalty    = -40
	travelComfortableBonus   = 25
	travelSlackMinutes       = 5
	travelComfortMinutes     = 20
	sharedLocationBonus      = 50
	mixedLocationPenalty     = -10
	snugFitBonus             = 15
	fragmentationPenalty     = -10
	snugFitThresholdMinutes  = 15
	fragmentThresholdMinutes = 60
)

// TravelEstimator estimates the minutes needed to move between two named
// locations. A real distance service can be plugged in; the default is a
// fixed placeholder.
type TravelEstimator interface {
	EstimateMinutes(from, to string) int
}

// FixedTravelEstimator always returns the same estimate.
type FixedTravelEstimator struct {
	Minutes int
}

func (f FixedTravelEstimator) EstimateMinutes(from, to string) int {
	return f.Minutes
}

// committedInterval is an interval committed during the current run, with
// the location it was committed at, for travel-feasibility checks.
type committedInterval struct {
	models.TimeInterval
	Location string
}

// groupPlacement is the chosen slot for a whole group: members are laid out
// back to back from Start, consuming TotalMinutes in total.
type groupPlacement struct {
	Start        time.Time
	End          time.Time
	TotalMinutes int
}

func taskDuration(t models.TaskInput) int {
	if t.DurationMinutes > 0 {
		return t.DurationMinutes
	}
	return 30
}

func taskPriority(t models.TaskInput) int {
	switch {
	case t.Priority < 1:
		return 3
	case t.Priority > 10:
		return 10
	}
	return t.Priority
}

// recencyScore prefers earlier slots, decaying linearly with distance into
// the future. It is pressure only, never a hard filter.
func recencyScore(now, slotStart time.Time) float64 {
	return 1000 - slotStart.Sub(now).Minutes()/60
}

func deadlineScore(deadline *time.Time, slotStart time.Time, durationMinutes int) float64 {
	if deadline == nil {
		return 0
	}
	m := deadline.Sub(slotStart).Minutes()
	switch {
	case m <= 0:
		return deadlineMissedPenalty
	case m < float64(durationMinutes):
		return deadlineTightPenalty
	case m < 12*60:
		return deadlineWithin12hBonus
	case m < 24*60:
		return deadlineWithin24hBonus
	}
	return 0
}

// timeOfDayScore rewards slots whose start matches the task's preferred
// bands (morning 08-12, afternoon 12-17, evening 17-22) or sits within 30
// minutes of an explicit preferred clock time.
func timeOfDayScore(preferred []string, slotStart time.Time, bandBonus, clockBonus float64) float64 {
	hour := slotStart.Hour()
	slotMinutes := hour*60 + slotStart.Minute()

	bandMatched := false
	clockMatched := false
	for _, p := range preferred {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "morning":
			bandMatched = bandMatched || (hour >= 8 && hour < 12)
		case "afternoon":
			bandMatched = bandMatched || (hour >= 12 && hour < 17)
		case "evening":
			bandMatched = bandMatched || (hour >= 17 && hour < 22)
		default:
			if mins, ok := parseClockTime(p); ok {
				diff := slotMinutes - mins
				if diff < 0 {
					diff = -diff
				}
				clockMatched = clockMatched || diff <= 30
			}
		}
	}

	score := 0.0
	if bandMatched {
		score += bandBonus
	}
	if clockMatched {
		score += clockBonus
	}
	return score
}

// parseClockTime understands "15:04", "3:04pm" and "3pm" style strings,
// returning minutes from midnight.
func parseClockTime(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, layout := range []string{"15:04", "3:04pm", "3pm"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

// travelScore checks the gap between the closest prior interval committed in
// this run and the candidate start when the two are at different locations.
func (e *DefaultSchedulingEngine) travelScore(location string, slotStart time.Time, committed []committedInterval) float64 {
	if location == "" {
		return 0
	}

	var prev *committedInterval
	for i := range committed {
		c := &committed[i]
		if c.End.After(slotStart) {
			continue
		}
		if prev == nil || c.End.After(prev.End) {
			prev = c
		}
	}
	if prev == nil || prev.Location == "" || prev.Location == location {
		return 0
	}

	travel := e.travel().EstimateMinutes(prev.Location, location)
	gap := slotStart.Sub(prev.End).Minutes()
	switch {
	case gap < float64(travel+travelSlackMinutes):
		return travelTooTightPenalty
	case gap <= float64(travel+travelComfortMinutes):
		return travelComfortableBonus
	}
	return 0
}

func priorityScore(priority float64) float64 {
	return (priority - 1) * 5
}

// fragmentationScore rewards placements that leave little unusable slack in
// the slot and penalizes ones that strand a large fragment.
func fragmentationScore(slotMinutes, durationMinutes int) float64 {
	remainder := slotMinutes - durationMinutes
	switch {
	case remainder < snugFitThresholdMinutes:
		return snugFitBonus
	case remainder > fragmentThresholdMinutes:
		return fragmentationPenalty
	}
	return 0
}

func (e *DefaultSchedulingEngine) scoreSlotForTask(task models.TaskInput, slot models.TimeInterval, committed []committedInterval, now time.Time) float64 {
	duration := taskDuration(task)
	score := recencyScore(now, slot.Start)
	score += deadlineScore(task.Deadline, slot.Start, duration)
	score += timeOfDayScore(task.PreferredTimes, slot.Start, preferredBandBonus, preferredClockBonus)
	score += e.travelScore(task.Location, slot.Start, committed)
	score += priorityScore(float64(taskPriority(task)))
	score += fragmentationScore(slot.Minutes(), duration)
	return score
}

// bestSlotForTask returns the highest-scoring placement for the task,
// truncated to exactly its duration, or false when no candidate slot is long
// enough. Exact score ties go to the earlier candidate.
func (e *DefaultSchedulingEngine) bestSlotForTask(task models.TaskInput, slots []models.TimeInterval, committed []committedInterval, now time.Time) (models.TimeInterval, bool) {
	duration := taskDuration(task)

	var best models.TimeInterval
	bestScore := math.Inf(-1)
	found := false
	for _, slot := range slots {
		if slot.Minutes() < duration {
			continue
		}
		score := e.scoreSlotForTask(task, slot, committed, now)
		if !found || score > bestScore {
			found = true
			bestScore = score
			best = models.TimeInterval{
				Start: slot.Start,
				End:   slot.Start.Add(time.Duration(duration) * time.Minute),
			}
		}
	}
	return best, found
}

// bestSlotForGroup scores candidate slots against the group's aggregate
// duration, using the earliest member deadline, the average member priority
// and a location-consistency term. Time-of-day bonuses are smaller than for
// a single task since the slot is a compromise across members.
func (e *DefaultSchedulingEngine) bestSlotForGroup(group models.TaskGroup, slots []models.TimeInterval, committed []committedInterval, now time.Time) (groupPlacement, bool) {
	if len(group.Tasks) == 0 {
		return groupPlacement{}, false
	}

	total := 0
	prioritySum := 0.0
	var earliestDeadline *time.Time
	var preferred []string
	distinct := make(map[string]bool)
	for _, t := range group.Tasks {
		total += taskDuration(t)
		prioritySum += float64(taskPriority(t))
		if t.Deadline != nil && (earliestDeadline == nil || t.Deadline.Before(*earliestDeadline)) {
			earliestDeadline = t.Deadline
		}
		preferred = append(preferred, t.PreferredTimes...)
		distinct[t.Location] = true
	}
	avgPriority := prioritySum / float64(len(group.Tasks))

	sharedLocation := ""
	if len(distinct) == 1 && group.Tasks[0].Location != "" {
		sharedLocation = group.Tasks[0].Location
	}
	locationScore := float64(mixedLocationPenalty * (len(distinct) - 1))
	if sharedLocation != "" {
		locationScore = sharedLocationBonus
	}

	var best groupPlacement
	bestScore := math.Inf(-1)
	found := false
	for _, slot := range slots {
		if slot.Minutes() < total {
			continue
		}
		score := recencyScore(now, slot.Start)
		score += deadlineScore(earliestDeadline, slot.Start, total)
		score += timeOfDayScore(preferred, slot.Start, groupPreferredBandBonus, groupPreferredClockBonus)
		score += e.travelScore(sharedLocation, slot.Start, committed)
		score += priorityScore(avgPriority)
		score += locationScore
		score += fragmentationScore(slot.Minutes(), total)

		if !found || score > bestScore {
			found = true
			bestScore = score
			best = groupPlacement{
				Start:        slot.Start,
				End:          slot.Start.Add(time.Duration(total) * time.Minute),
				TotalMinutes: total,
			}
		}
	}
	return best, found
}
