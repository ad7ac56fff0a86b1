// File: services/scheduling/workinghours.go
package scheduling

import (
	"time"

	"taskpilot/models"
	"taskpilot/utils"

	"go.uber.org/zap"
)

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// timeToMinutes parses an "HH:mm" wall-clock string into minutes from
// midnight.
func timeToMinutes(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// startOfDay returns midnight of the given day in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayWorkingWindow computes the working interval for a calendar day from the
// weekly profile. The second return value is false for non-working days and
// for malformed entries (bad "HH:mm", start >= end): those degrade to "no
// working hours" with a warning, never an error.
func dayWorkingWindow(day time.Time, hours []models.WorkingHour) (models.TimeInterval, bool) {
	name := weekdayNames[day.Weekday()]

	var setting *models.WorkingHour
	for i := range hours {
		if hours[i].Day == name {
			setting = &hours[i]
			break
		}
	}
	if setting == nil || !setting.IsWorkingDay {
		return models.TimeInterval{}, false
	}

	startMin, okStart := timeToMinutes(setting.Start)
	endMin, okEnd := timeToMinutes(setting.End)
	if !okStart || !okEnd || startMin >= endMin {
		utils.GetLogger().Warn("Invalid working hours entry, treating day as non-working",
			zap.String("day", name),
			zap.String("start", setting.Start),
			zap.String("end", setting.End))
		return models.TimeInterval{}, false
	}

	midnight := startOfDay(day)
	return models.TimeInterval{
		Start: midnight.Add(time.Duration(startMin) * time.Minute),
		End:   midnight.Add(time.Duration(endMin) * time.Minute),
	}, true
}
