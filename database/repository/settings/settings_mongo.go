// File: database/repository/settings/settings_mongo.go
package settingsRepo

import (
	"context"
	"time"

	"taskpilot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoSettingsRepo) Get(ctx context.Context) (*models.UserSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.UserSettings
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *mongoSettingsRepo) Create(ctx context.Context, settings *models.UserSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, settings)
	return err
}

func (r *mongoSettingsRepo) UpdateWorkingHours(ctx context.Context, id string, hours []models.WorkingHour) (*models.UserSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"working_hours": hours,
		"updated_at":    time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.UserSettings
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
