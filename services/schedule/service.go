// File: services/schedule/service.go
package schedule

import (
	"context"
	"fmt"
	"time"

	taskRepo "taskpilot/database/repository/task"
	"taskpilot/models"
	"taskpilot/services/scheduling"
	settingsService "taskpilot/services/settings"
	"taskpilot/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RunResult summarizes one scheduling run.
type RunResult struct {
	ScheduledCount     int                         `json:"scheduledCount"`
	Assignments        []models.ScheduleAssignment `json:"assignments"`
	UnscheduledTaskIDs []string                    `json:"unscheduledTaskIds,omitempty"`
}

// ScheduleService drives the scheduling engine against the task store and
// exposes the raw availability query surface.
type ScheduleService interface {
	// RunScheduler places all unscheduled incomplete tasks and persists the
	// resulting assignments.
	RunScheduler(ctx context.Context) (*RunResult, error)
	// GetAvailability returns the free slots for a date range without
	// running placement.
	GetAvailability(ctx context.Context, start, end time.Time) ([]models.TimeInterval, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Tasks    taskRepo.TaskRepository
	Settings settingsService.SettingsService
	Engine   scheduling.Engine

	cache *resultCache
}

// NewDefaultScheduleService wires the service with its collaborators; the
// redis client may be nil, in which case caching is disabled.
func NewDefaultScheduleService(tasks taskRepo.TaskRepository, settings settingsService.SettingsService, engine scheduling.Engine, cacheClient *redis.Client) *DefaultScheduleService {
	return &DefaultScheduleService{
		Tasks:    tasks,
		Settings: settings,
		Engine:   engine,
		cache:    newResultCache(cacheClient),
	}
}

// RunScheduler fetches the engine's inputs, runs one placement pass, writes
// the assignments back and invalidates cached availability. Persistence is
// per task: a failed write is logged and skipped so the rest of the run
// still lands.
func (s *DefaultScheduleService) RunScheduler(ctx context.Context) (*RunResult, error) {
	logger := utils.GetLogger()

	unscheduled, err := s.Tasks.GetUnscheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unscheduled tasks: %w", err)
	}
	if len(unscheduled) == 0 {
		return &RunResult{}, nil
	}

	settings, err := s.Settings.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	bookings, err := s.existingBookings(ctx)
	if err != nil {
		return nil, err
	}

	inputs := make([]models.TaskInput, 0, len(unscheduled))
	for _, t := range unscheduled {
		inputs = append(inputs, t.SchedulingInput())
	}

	result := s.Engine.ScheduleTasks(inputs, settings.WorkingHours, bookings)

	persisted := make([]models.ScheduleAssignment, 0, len(result.Assignments))
	for _, a := range result.Assignments {
		if err := s.Tasks.SetSchedule(ctx, a.TaskID, a.Start, a.End); err != nil {
			logger.Error("Failed to persist assignment, skipping",
				zap.String("taskId", a.TaskID), zap.Error(err))
			continue
		}
		persisted = append(persisted, a)
	}

	s.cache.invalidatePrefix(ctx, availableSlotsKeyPrefix)
	logger.Info("Scheduling run complete",
		zap.Int("scheduled", len(persisted)),
		zap.Int("unscheduled", len(result.UnscheduledTaskIDs)))

	return &RunResult{
		ScheduledCount:     len(persisted),
		Assignments:        persisted,
		UnscheduledTaskIDs: result.UnscheduledTaskIDs,
	}, nil
}

// GetAvailability serves the "what's open" query, cached for a few minutes
// because bookings mutate slowly between runs.
func (s *DefaultScheduleService) GetAvailability(ctx context.Context, start, end time.Time) ([]models.TimeInterval, error) {
	key := availableSlotsKey(start, end)
	var cached []models.TimeInterval
	if s.cache.get(ctx, key, &cached) {
		return cached, nil
	}

	settings, err := s.Settings.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	bookings, err := s.existingBookings(ctx)
	if err != nil {
		return nil, err
	}

	slots := s.Engine.AvailableSlots(start, end, settings.WorkingHours, bookings)
	s.cache.set(ctx, key, slots, cacheMedium)
	return slots, nil
}

// existingBookings projects already-scheduled incomplete tasks onto the
// busy intervals the engine must not overlap.
func (s *DefaultScheduleService) existingBookings(ctx context.Context) ([]models.ExistingBooking, error) {
	scheduled, err := s.Tasks.GetScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled tasks: %w", err)
	}

	bookings := make([]models.ExistingBooking, 0, len(scheduled))
	for _, t := range scheduled {
		if t.ScheduledStart == nil || t.ScheduledEnd == nil {
			continue
		}
		bookings = append(bookings, models.ExistingBooking{
			Start:    *t.ScheduledStart,
			End:      *t.ScheduledEnd,
			Location: t.Location(),
		})
	}
	return bookings, nil
}
