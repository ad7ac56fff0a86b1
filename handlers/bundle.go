// File: handlers/bundle.go
package handlers

// HandlerBundle aggregates all HTTP handlers for route registration.
type HandlerBundle struct {
	Task     *TaskHandler
	Settings *SettingsHandler
	Schedule *ScheduleHandler
}
