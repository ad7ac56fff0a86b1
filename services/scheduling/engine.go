// File: services/scheduling/engine.go
package scheduling

import (
	"sort"
	"time"

	"taskpilot/models"
	"taskpilot/utils"

	"go.uber.org/zap"
)

// Engine turns a batch of unscheduled tasks, a weekly working-hours profile
// and the already-booked intervals into concrete schedule assignments. All
// computation is pure and in-memory: inputs are supplied up front and the
// engine never blocks on I/O. Concurrent runs over overlapping booking sets
// must be serialized by the caller.
type Engine interface {
	// ScheduleTasks runs the full placement pass. Every task ends either in
	// Assignments or in UnscheduledTaskIDs; an unschedulable task is not an
	// error.
	ScheduleTasks(tasks []models.TaskInput, hours []models.WorkingHour, bookings []models.ExistingBooking) models.ScheduleResult
	// AvailableSlots is the raw free/busy query surface, without placement.
	AvailableSlots(rangeStart, rangeEnd time.Time, hours []models.WorkingHour, bookings []models.ExistingBooking) []models.TimeInterval
}

// DefaultSchedulingEngine is the production implementation.
type DefaultSchedulingEngine struct {
	// HorizonDays bounds the scheduling window, counted from the start of
	// the current day. Zero means the 14-day default.
	HorizonDays int
	// Travel estimates inter-location travel time; nil means a fixed
	// 15-minute placeholder.
	Travel TravelEstimator
	// Now is the clock; nil means time.Now. Injected for tests.
	Now func() time.Time
}

// NewDefaultSchedulingEngine constructs an engine with default horizon,
// travel estimator and clock.
func NewDefaultSchedulingEngine() *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{}
}

func (e *DefaultSchedulingEngine) horizonDays() int {
	if e.HorizonDays > 0 {
		return e.HorizonDays
	}
	return 14
}

func (e *DefaultSchedulingEngine) travel() TravelEstimator {
	if e.Travel != nil {
		return e.Travel
	}
	return FixedTravelEstimator{Minutes: 15}
}

func (e *DefaultSchedulingEngine) clock() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// ScheduleTasks sorts and groups the batch, then places groups and leftover
// tasks one at a time, recomputing availability from scratch after every
// commit. Availability is held as a local value that is reassigned, never a
// shared structure mutated in place.
func (e *DefaultSchedulingEngine) ScheduleTasks(tasks []models.TaskInput, hours []models.WorkingHour, bookings []models.ExistingBooking) models.ScheduleResult {
	logger := utils.GetLogger()
	now := e.clock()
	windowStart := startOfDay(now)
	windowEnd := windowStart.AddDate(0, 0, e.horizonDays()-1)

	sorted := sortTasks(tasks)
	groups, _ := GroupTasks(sorted)

	availability := trimToNow(e.AvailableSlots(windowStart, windowEnd, hours, bookings), now)

	var assignments []models.ScheduleAssignment
	var committed []committedInterval
	scheduled := make(map[string]bool)

	recompute := func() {
		merged := make([]models.ExistingBooking, 0, len(bookings)+len(committed))
		merged = append(merged, bookings...)
		for _, c := range committed {
			merged = append(merged, models.ExistingBooking{Start: c.Start, End: c.End, Location: c.Location})
		}
		availability = trimToNow(e.AvailableSlots(windowStart, windowEnd, hours, merged), now)
	}

	commit := func(t models.TaskInput, start, end time.Time) {
		assignments = append(assignments, models.ScheduleAssignment{TaskID: t.ID, Start: start, End: end})
		committed = append(committed, committedInterval{
			TimeInterval: models.TimeInterval{Start: start, End: end},
			Location:     t.Location,
		})
		scheduled[t.ID] = true
	}

	// Group placement pass. A task may sit in both a location group and a
	// deadline group; members committed by an earlier group are skipped so
	// no task is ever placed twice.
	for _, group := range groups {
		members := make([]models.TaskInput, 0, len(group.Tasks))
		for _, t := range group.Tasks {
			if !scheduled[t.ID] {
				members = append(members, t)
			}
		}
		if len(members) == 0 {
			continue
		}

		placement, ok := e.bestSlotForGroup(models.TaskGroup{ID: group.ID, Tasks: members}, availability, committed, now)
		if !ok {
			// No slot fits the whole group; members fall through to the
			// individual pass rather than being partially placed.
			logger.Debug("No slot fits group, deferring members to individual placement",
				zap.String("group", group.ID), zap.Int("members", len(members)))
			continue
		}

		cursor := placement.Start
		for _, t := range members {
			end := cursor.Add(time.Duration(taskDuration(t)) * time.Minute)
			commit(t, cursor, end)
			cursor = end
		}
		recompute()
	}

	// Individual placement pass over everything not yet committed, in the
	// original sort order.
	var unscheduled []string
	for _, t := range sorted {
		if scheduled[t.ID] {
			continue
		}
		slot, ok := e.bestSlotForTask(t, availability, committed, now)
		if !ok {
			logger.Info("No slot found for task, leaving unscheduled", zap.String("taskId", t.ID))
			unscheduled = append(unscheduled, t.ID)
			continue
		}
		commit(t, slot.Start, slot.End)
		recompute()
	}

	return models.ScheduleResult{Assignments: assignments, UnscheduledTaskIDs: unscheduled}
}

// sortTasks orders the batch by priority descending, then deadline (tasks
// with one before tasks without, earlier first), then creation time.
func sortTasks(tasks []models.TaskInput) []models.TaskInput {
	sorted := make([]models.TaskInput, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := taskPriority(sorted[i]), taskPriority(sorted[j])
		if pi != pj {
			return pi > pj
		}

		di, dj := sorted[i].Deadline, sorted[j].Deadline
		if (di != nil) != (dj != nil) {
			return di != nil
		}
		if di != nil && dj != nil && !di.Equal(*dj) {
			return di.Before(*dj)
		}

		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	return sorted
}

// trimToNow drops slots that already ended and clips a slot straddling now,
// so placement never proposes a start in the past.
func trimToNow(slots []models.TimeInterval, now time.Time) []models.TimeInterval {
	var out []models.TimeInterval
	for _, s := range slots {
		if !s.End.After(now) {
			continue
		}
		if s.Start.Before(now) {
			s.Start = now
		}
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}
