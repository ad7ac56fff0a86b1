package models

import "time"

// WorkingHour is one day's entry in the weekly working-hours profile.
// Start and End are wall-clock "HH:mm" strings; the engine runs in a single
// implicit local timezone.
type WorkingHour struct {
	Day          string `bson:"day" json:"day"` // lowercase english weekday name
	IsWorkingDay bool   `bson:"is_working_day" json:"isWorkingDay"`
	Start        string `bson:"start" json:"start"`
	End          string `bson:"end" json:"end"`
}

// UserSettings is the singleton settings document.
type UserSettings struct {
	ID           string        `bson:"id" json:"id"`
	WorkingHours []WorkingHour `bson:"working_hours" json:"workingHours"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updatedAt"`
}

// DefaultWorkingHours returns the default weekly profile: Monday through
// Friday 09:00-17:00, weekend off.
func DefaultWorkingHours() []WorkingHour {
	week := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	hours := make([]WorkingHour, 0, len(week))
	for _, day := range week {
		hours = append(hours, WorkingHour{
			Day:          day,
			IsWorkingDay: day != "saturday" && day != "sunday",
			Start:        "09:00",
			End:          "17:00",
		})
	}
	return hours
}
