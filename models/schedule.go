package models

import "time"

// TimeInterval is a half-open [Start, End) span of time. It is used for busy
// blocks, free slots and working windows alike; Start < End always holds for
// valid intervals.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the interval length.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Minutes returns the interval length in whole minutes.
func (iv TimeInterval) Minutes() int {
	return int(iv.End.Sub(iv.Start) / time.Minute)
}

// Valid reports whether the interval has positive duration.
func (iv TimeInterval) Valid() bool {
	return iv.Start.Before(iv.End)
}

// Overlaps reports whether two intervals intersect.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// TaskInput is the scheduling-relevant projection of a task. The engine
// receives a read-only snapshot and never mutates it; it only proposes
// (taskID, start, end) assignments.
type TaskInput struct {
	ID              string     `json:"id"`
	DurationMinutes int        `json:"durationMinutes"`
	Priority        int        `json:"priority"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Location        string     `json:"location,omitempty"`
	PreferredTimes  []string   `json:"preferredTimes,omitempty"`
	Category        string     `json:"category"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ScheduleAssignment is the engine's sole output unit: a concrete placement
// for one task. The caller persists it.
type ScheduleAssignment struct {
	TaskID string    `json:"taskId"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// ExistingBooking is a previously committed interval the engine must treat
// as busy and never overlap.
type ExistingBooking struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Location string    `json:"location,omitempty"`
}

// TaskGroup is a batch of tasks intended to be placed contiguously in one
// slot. Groups are kept in an ordered slice so placement iterates in
// formation order.
type TaskGroup struct {
	ID    string      `json:"id"`
	Tasks []TaskInput `json:"tasks"`
}

// ScheduleResult is what one orchestrator run produces: the accumulated
// assignments plus the IDs of tasks no slot could be found for. An
// unscheduled task is a normal outcome, not an error.
type ScheduleResult struct {
	Assignments        []ScheduleAssignment `json:"assignments"`
	UnscheduledTaskIDs []string             `json:"unscheduledTaskIds,omitempty"`
}
