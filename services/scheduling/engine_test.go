package scheduling

import (
	"testing"
	"time"

	"taskpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineAt(clock time.Time) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{Now: func() time.Time { return clock }}
}

func assignmentFor(t *testing.T, result models.ScheduleResult, taskID string) models.ScheduleAssignment {
	t.Helper()
	for _, a := range result.Assignments {
		if a.TaskID == taskID {
			return a
		}
	}
	t.Fatalf("no assignment for task %s", taskID)
	return models.ScheduleAssignment{}
}

func TestScheduleTasksEmptyBatch(t *testing.T) {
	engine := engineAt(mondayAt(7, 0))
	result := engine.ScheduleTasks(nil, models.DefaultWorkingHours(), nil)
	assert.Empty(t, result.Assignments)
	assert.Empty(t, result.UnscheduledTaskIDs)
}

func TestScheduleTasksSimplePlacement(t *testing.T) {
	engine := engineAt(mondayAt(7, 0))
	tasks := []models.TaskInput{
		{ID: "a", DurationMinutes: 60, Priority: 3, CreatedAt: monday},
	}

	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), nil)
	require.Len(t, result.Assignments, 1)
	assert.Empty(t, result.UnscheduledTaskIDs)

	a := result.Assignments[0]
	assert.Equal(t, "a", a.TaskID)
	assert.Equal(t, mondayAt(9, 0), a.Start)
	assert.Equal(t, mondayAt(10, 0), a.End)
}

func TestScheduleTasksWeekendRollsToMonday(t *testing.T) {
	saturday := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	engine := engineAt(saturday)
	tasks := []models.TaskInput{
		{ID: "a", DurationMinutes: 60, Priority: 3, CreatedAt: saturday},
	}

	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), nil)
	require.Len(t, result.Assignments, 1)

	nextMonday := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, nextMonday, result.Assignments[0].Start)
}

func TestScheduleTasksNeverStartsInThePast(t *testing.T) {
	clock := mondayAt(12, 30)
	engine := engineAt(clock)
	tasks := []models.TaskInput{
		{ID: "a", DurationMinutes: 30, Priority: 3, CreatedAt: monday},
	}

	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), nil)
	require.Len(t, result.Assignments, 1)
	assert.False(t, result.Assignments[0].Start.Before(clock))
	assert.Equal(t, clock, result.Assignments[0].Start)
}

func TestScheduleTasksRespectsExistingBookings(t *testing.T) {
	engine := engineAt(mondayAt(7, 0))
	bookings := []models.ExistingBooking{
		{Start: mondayAt(9, 0), End: mondayAt(16, 0)},
	}
	tasks := []models.TaskInput{
		{ID: "a", DurationMinutes: 60, Priority: 3, CreatedAt: monday},
	}

	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), bookings)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, mondayAt(16, 0), result.Assignments[0].Start)
	assert.Equal(t, mondayAt(17, 0), result.Assignments[0].End)
}

func TestScheduleTasksDeadlineTaskPlacedFirst(t *testing.T) {
	engine := engineAt(mondayAt(7, 0))
	deadline := mondayAt(18, 0)
	tasks := []models.TaskInput{
		{ID: "no-deadline", DurationMinutes: 60, Priority: 3, CreatedAt: monday},
		{ID: "deadline", DurationMinutes: 60, Priority: 3, Deadline: &deadline, CreatedAt: monday.Add(time.Minute)},
	}

	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), nil)
	require.Len(t, result.Assignments, 2)

	withDeadline := assignmentFor(t, result, "deadline")
	without := assignmentFor(t, result, "no-deadline")
	assert.Equal(t, mondayAt(9, 0), withDeadline.Start)
	assert.True(t, withDeadline.End.Equal(without.Start) || withDeadline.End.Before(without.Start))
}

func TestScheduleTasksContiguousGroupPlacement(t *testing.T) {
	engine := engineAt(mondayAt(7, 0))
	tasks := []models.TaskInput{
		{ID: "a", DurationMinutes: 30, Priority: 3, Location: "office", CreatedAt: monday},
		{ID: "b", DurationMinutes: 30, Priority: 3, Location: "office", CreatedAt: monday.Add(time.Minute)},
		{ID: "c", DurationMinutes: 30, Priority: 3, Location: "office", CreatedAt: monday.Add(2 * time.Minute)},
	}

	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), nil)
	require.Len(t, result.Assignments, 3)
	assert.Empty(t, result.UnscheduledTaskIDs)

	a := assignmentFor(t, result, "a")
	b := assignmentFor(t, result, "b")
	c := assignmentFor(t, result, "c")
	assert.Equal(t, mondayAt(9, 0), a.Start)
	assert.Equal(t, a.End, b.Start)
	assert.Equal(t, b.End, c.Start)
	assert.Equal(t, mondayAt(10, 30), c.End)
}

func TestScheduleTasksUnschedulableIsNotAnError(t *testing.T) {
	engine := engineAt(mondayAt(7, 0))
	tasks := []models.TaskInput{
		{ID: "huge", DurationMinutes: 600, Priority: 3, CreatedAt: monday},
		{ID: "small", DurationMinutes: 30, Priority: 3, CreatedAt: monday.Add(time.Minute)},
	}

	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), nil)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "small", result.Assignments[0].TaskID)
	assert.Equal(t, []string{"huge"}, result.UnscheduledTaskIDs)
}

func TestScheduleTasksAllDaysOff(t *testing.T) {
	engine := engineAt(mondayAt(7, 0))
	var hours []models.WorkingHour
	for _, h := range models.DefaultWorkingHours() {
		h.IsWorkingDay = false
		hours = append(hours, h)
	}
	tasks := []models.TaskInput{
		{ID: "a", DurationMinutes: 30, Priority: 3, CreatedAt: monday},
	}

	result := engine.ScheduleTasks(tasks, hours, nil)
	assert.Empty(t, result.Assignments)
	assert.Equal(t, []string{"a"}, result.UnscheduledTaskIDs)
}

func TestScheduleTasksHorizonBound(t *testing.T) {
	saturday := time.Date(2026, 3, 7, 8, 0, 0, 0, time.UTC)
	engine := engineAt(saturday)
	engine.HorizonDays = 1

	tasks := []models.TaskInput{
		{ID: "a", DurationMinutes: 30, Priority: 3, CreatedAt: saturday},
	}
	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), nil)
	assert.Empty(t, result.Assignments)
	assert.Equal(t, []string{"a"}, result.UnscheduledTaskIDs)
}

func TestScheduleTasksPastDeadlineStillPlaced(t *testing.T) {
	engine := engineAt(mondayAt(7, 0))
	missed := monday.AddDate(0, 0, -2)
	tasks := []models.TaskInput{
		{ID: "late", DurationMinutes: 30, Priority: 3, Deadline: &missed, CreatedAt: monday},
	}

	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), nil)
	require.Len(t, result.Assignments, 1)
	assert.Empty(t, result.UnscheduledTaskIDs)
}

func TestScheduleTasksInvariants(t *testing.T) {
	engine := engineAt(mondayAt(7, 0))
	deadline := monday.AddDate(0, 0, 2)
	bookings := []models.ExistingBooking{
		{Start: mondayAt(10, 0), End: mondayAt(11, 0)},
		{Start: monday.AddDate(0, 0, 1).Add(9 * time.Hour), End: monday.AddDate(0, 0, 1).Add(12 * time.Hour)},
	}
	tasks := []models.TaskInput{
		{ID: "t1", DurationMinutes: 90, Priority: 8, Location: "office", CreatedAt: monday},
		{ID: "t2", DurationMinutes: 45, Priority: 5, Location: "office", CreatedAt: monday.Add(time.Minute)},
		{ID: "t3", DurationMinutes: 30, Priority: 5, Location: "home", Deadline: &deadline, CreatedAt: monday.Add(2 * time.Minute)},
		{ID: "t4", DurationMinutes: 120, Priority: 2, CreatedAt: monday.Add(3 * time.Minute)},
		{ID: "t5", DurationMinutes: 60, Priority: 7, Location: "home", Deadline: &deadline, CreatedAt: monday.Add(4 * time.Minute)},
		{ID: "t6", DurationMinutes: 15, Priority: 9, PreferredTimes: []string{"morning"}, CreatedAt: monday.Add(5 * time.Minute)},
	}

	result := engine.ScheduleTasks(tasks, models.DefaultWorkingHours(), bookings)

	// Every task ends up exactly once, either placed or reported unscheduled.
	seen := make(map[string]int)
	for _, a := range result.Assignments {
		seen[a.TaskID]++
	}
	for _, id := range result.UnscheduledTaskIDs {
		seen[id]++
	}
	require.Len(t, seen, len(tasks))
	for _, task := range tasks {
		assert.Equal(t, 1, seen[task.ID], "task %s placed or reported more than once", task.ID)
	}

	durations := make(map[string]int)
	for _, task := range tasks {
		durations[task.ID] = task.DurationMinutes
	}

	for i, a := range result.Assignments {
		// Duration fidelity.
		assert.Equal(t, durations[a.TaskID], int(a.End.Sub(a.Start)/time.Minute), "task %s", a.TaskID)

		// Inside the working window on a working day.
		dayStart := startOfDay(a.Start)
		assert.NotEqual(t, time.Saturday, a.Start.Weekday())
		assert.NotEqual(t, time.Sunday, a.Start.Weekday())
		assert.False(t, a.Start.Before(dayStart.Add(9*time.Hour)), "task %s starts before work", a.TaskID)
		assert.False(t, a.End.After(dayStart.Add(17*time.Hour)), "task %s ends after work", a.TaskID)

		// No overlap with existing bookings.
		placed := models.TimeInterval{Start: a.Start, End: a.End}
		for _, b := range bookings {
			assert.False(t, placed.Overlaps(models.TimeInterval{Start: b.Start, End: b.End}),
				"task %s overlaps booking", a.TaskID)
		}

		// No pairwise overlap between assignments.
		for _, other := range result.Assignments[i+1:] {
			assert.False(t, placed.Overlaps(models.TimeInterval{Start: other.Start, End: other.End}),
				"tasks %s and %s overlap", a.TaskID, other.TaskID)
		}
	}
}
