// File: services/scheduling/grouper.go
package scheduling

import (
	"taskpilot/models"
)

// noLocationKey is the bucket for tasks without a location.
const noLocationKey = "no_location"

// GroupTasks partitions a task batch into candidate groups for contiguous
// placement, plus the ungrouped remainder.
//
// Tasks are bucketed by location (singleton buckets are kept as groups so
// later processing stays uniform); buckets with several tasks are re-ordered
// so category-mates sit together. Tasks sharing a deadline day additionally
// form deadline groups, so a task may appear in both a location group and a
// deadline group; the orchestrator resolves the duplication by skipping
// already-committed members.
func GroupTasks(tasks []models.TaskInput) ([]models.TaskGroup, []models.TaskInput) {
	if len(tasks) <= 1 {
		return nil, tasks
	}

	var locationOrder []string
	locationBuckets := make(map[string][]models.TaskInput)
	for _, t := range tasks {
		key := t.Location
		if key == "" {
			key = noLocationKey
		}
		if _, seen := locationBuckets[key]; !seen {
			locationOrder = append(locationOrder, key)
		}
		locationBuckets[key] = append(locationBuckets[key], t)
	}

	var groups []models.TaskGroup
	for _, key := range locationOrder {
		bucket := locationBuckets[key]
		if len(bucket) > 1 {
			bucket = orderByCategory(bucket)
		}
		groups = append(groups, models.TaskGroup{ID: "location:" + key, Tasks: bucket})
	}

	// Deadline-day buckets with at least two members become extra candidate
	// groups.
	var dayOrder []string
	dayBuckets := make(map[string][]models.TaskInput)
	for _, t := range tasks {
		if t.Deadline == nil {
			continue
		}
		day := t.Deadline.Format("2006-01-02")
		if _, seen := dayBuckets[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		dayBuckets[day] = append(dayBuckets[day], t)
	}
	for _, day := range dayOrder {
		if bucket := dayBuckets[day]; len(bucket) >= 2 {
			groups = append(groups, models.TaskGroup{ID: "deadline:" + day, Tasks: bucket})
		}
	}

	grouped := make(map[string]bool)
	for _, g := range groups {
		for _, t := range g.Tasks {
			grouped[t.ID] = true
		}
	}
	var remaining []models.TaskInput
	for _, t := range tasks {
		if !grouped[t.ID] {
			remaining = append(remaining, t)
		}
	}

	return groups, remaining
}

// orderByCategory reorders a location bucket so tasks sharing a category sit
// together; category order follows first appearance. The grouping boundary
// itself is unchanged.
func orderByCategory(bucket []models.TaskInput) []models.TaskInput {
	var categoryOrder []string
	categories := make(map[string][]models.TaskInput)
	for _, t := range bucket {
		c := t.Category
		if c == "" {
			c = "General"
		}
		if _, seen := categories[c]; !seen {
			categoryOrder = append(categoryOrder, c)
		}
		categories[c] = append(categories[c], t)
	}

	out := make([]models.TaskInput, 0, len(bucket))
	for _, c := range categoryOrder {
		out = append(out, categories[c]...)
	}
	return out
}
