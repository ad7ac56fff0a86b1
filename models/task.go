package models

import "time"

// SchedulingConstraints carries the user-supplied placement preferences for a task.
type SchedulingConstraints struct {
	PreferredDays  []string   `bson:"preferred_days,omitempty" json:"preferredDays,omitempty"`   // e.g. ["monday", "tuesday"]
	PreferredTimes []string   `bson:"preferred_times,omitempty" json:"preferredTimes,omitempty"` // "morning"/"afternoon"/"evening" or clock times like "15:00"
	Deadline       *time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Location       string     `bson:"preferred_location,omitempty" json:"preferredLocation,omitempty"`
}

// Task is the persisted task record.
type Task struct {
	ID                string                `bson:"id" json:"id"`
	Title             string                `bson:"title" json:"title"`
	Description       string                `bson:"description" json:"description"`
	Completed         bool                  `bson:"completed" json:"completed"`
	Tags              []string              `bson:"tags,omitempty" json:"tags,omitempty"`
	EstimatedDuration int                   `bson:"estimated_duration" json:"estimated_duration"` // minutes
	Priority          int                   `bson:"priority" json:"priority"`                     // 1 (low) .. 10 (high)
	Category          string                `bson:"category" json:"category"`
	DerivedLocation   string                `bson:"derived_location,omitempty" json:"derived_location,omitempty"`
	Constraints       SchedulingConstraints `bson:"scheduling_constraints,omitempty" json:"scheduling_constraints,omitempty"`
	ScheduledStart    *time.Time            `bson:"scheduled_start_time,omitempty" json:"scheduled_start_time,omitempty"`
	ScheduledEnd      *time.Time            `bson:"scheduled_end_time,omitempty" json:"scheduled_end_time,omitempty"`
	CreatedAt         time.Time             `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time             `bson:"updated_at" json:"updatedAt"`
}

// Location resolves the location to schedule the task at: an explicit
// constraint wins over one derived from the task text.
func (t Task) Location() string {
	if t.Constraints.Location != "" {
		return t.Constraints.Location
	}
	return t.DerivedLocation
}

// SchedulingInput projects the task onto the read-only shape the scheduling
// engine consumes.
func (t Task) SchedulingInput() TaskInput {
	return TaskInput{
		ID:              t.ID,
		DurationMinutes: t.EstimatedDuration,
		Priority:        t.Priority,
		Deadline:        t.Constraints.Deadline,
		Location:        t.Location(),
		PreferredTimes:  t.Constraints.PreferredTimes,
		Category:        t.Category,
		CreatedAt:       t.CreatedAt,
	}
}
