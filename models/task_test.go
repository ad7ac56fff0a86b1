package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskLocationConstraintWins(t *testing.T) {
	task := Task{
		DerivedLocation: "office",
		Constraints:     SchedulingConstraints{Location: "home"},
	}
	assert.Equal(t, "home", task.Location())

	task.Constraints.Location = ""
	assert.Equal(t, "office", task.Location())
}

func TestTaskSchedulingInput(t *testing.T) {
	deadline := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	task := Task{
		ID:                "t1",
		EstimatedDuration: 45,
		Priority:          7,
		Category:          "Work",
		DerivedLocation:   "office",
		Constraints: SchedulingConstraints{
			Deadline:       &deadline,
			PreferredTimes: []string{"morning"},
		},
		CreatedAt: created,
	}

	input := task.SchedulingInput()
	assert.Equal(t, "t1", input.ID)
	assert.Equal(t, 45, input.DurationMinutes)
	assert.Equal(t, 7, input.Priority)
	assert.Equal(t, &deadline, input.Deadline)
	assert.Equal(t, "office", input.Location)
	assert.Equal(t, []string{"morning"}, input.PreferredTimes)
	assert.Equal(t, "Work", input.Category)
	assert.Equal(t, created, input.CreatedAt)
}

func TestTimeInterval(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	iv := TimeInterval{Start: base, End: base.Add(90 * time.Minute)}

	assert.Equal(t, 90, iv.Minutes())
	assert.Equal(t, 90*time.Minute, iv.Duration())
	assert.True(t, iv.Valid())
	assert.False(t, TimeInterval{Start: base, End: base}.Valid())

	other := TimeInterval{Start: base.Add(60 * time.Minute), End: base.Add(2 * time.Hour)}
	assert.True(t, iv.Overlaps(other))

	adjacent := TimeInterval{Start: iv.End, End: iv.End.Add(time.Hour)}
	assert.False(t, iv.Overlaps(adjacent))
}
