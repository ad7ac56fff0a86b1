// File: services/settings/settings.go
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	settingsRepo "taskpilot/database/repository/settings"
	"taskpilot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// SettingsService defines business logic for the user settings document.
type SettingsService interface {
	// GetSettings returns the settings document, creating it with the
	// default working week when none exists yet.
	GetSettings(ctx context.Context) (*models.UserSettings, error)
	UpdateWorkingHours(ctx context.Context, hours []models.WorkingHour) (*models.UserSettings, error)
}

// DefaultSettingsService is the production implementation.
type DefaultSettingsService struct {
	Repo settingsRepo.SettingsRepository
}

func (s *DefaultSettingsService) GetSettings(ctx context.Context) (*models.UserSettings, error) {
	settings, err := s.Repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	now := time.Now()
	created := models.UserSettings{
		ID:           uuid.New().String(),
		WorkingHours: models.DefaultWorkingHours(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, &created); err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return &created, nil
}

// UpdateWorkingHours validates and replaces the weekly profile. Each entry
// must name a distinct weekday; working days need parseable "HH:mm" bounds
// with start before end.
func (s *DefaultSettingsService) UpdateWorkingHours(ctx context.Context, hours []models.WorkingHour) (*models.UserSettings, error) {
	if err := validateWorkingHours(hours); err != nil {
		return nil, err
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := s.Repo.UpdateWorkingHours(ctx, settings.ID, hours)
	if err != nil {
		return nil, fmt.Errorf("failed to update working hours: %w", err)
	}
	return updated, nil
}

func validateWorkingHours(hours []models.WorkingHour) error {
	seen := make(map[string]bool)
	for _, h := range hours {
		if !validDays[h.Day] {
			return fmt.Errorf("invalid day name %q", h.Day)
		}
		if seen[h.Day] {
			return fmt.Errorf("duplicate entry for %s", h.Day)
		}
		seen[h.Day] = true

		if !h.IsWorkingDay {
			continue
		}
		start, err := time.Parse("15:04", h.Start)
		if err != nil {
			return fmt.Errorf("invalid start time %q for %s", h.Start, h.Day)
		}
		end, err := time.Parse("15:04", h.End)
		if err != nil {
			return fmt.Errorf("invalid end time %q for %s", h.End, h.Day)
		}
		if !start.Before(end) {
			return fmt.Errorf("start %q must be before end %q for %s", h.Start, h.End, h.Day)
		}
	}
	return nil
}
