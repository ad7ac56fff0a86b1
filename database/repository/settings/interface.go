// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"

	"taskpilot/config"
	"taskpilot/database"
	"taskpilot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsRepository defines persistence operations for the singleton user
// settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.UserSettings, error)
	Create(ctx context.Context, settings *models.UserSettings) error
	UpdateWorkingHours(ctx context.Context, id string, hours []models.WorkingHour) (*models.UserSettings, error)
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoSettingsRepo{
		coll: db.Collection("settings"),
	}
}
