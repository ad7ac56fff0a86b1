// File: database/repository/task/queries.go
package taskRepo

import (
	"context"
	"time"

	"taskpilot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUnscheduled returns incomplete tasks that have not been given a slot
// yet. These are the scheduling engine's inputs.
func (r *mongoTaskRepo) GetUnscheduled(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"completed":            false,
		"scheduled_start_time": bson.M{"$exists": false},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetScheduled returns incomplete tasks that already hold a slot; the
// engine treats their intervals as existing bookings.
func (r *mongoTaskRepo) GetScheduled(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"completed":            false,
		"scheduled_start_time": bson.M{"$exists": true},
	}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
