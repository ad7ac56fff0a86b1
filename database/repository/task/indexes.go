// File: database/repository/task/indexes.go
package taskRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes backing the common task queries.
func (r *mongoTaskRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "completed", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "priority", Value: -1}}},
		{Keys: bson.D{{Key: "scheduling_constraints.deadline", Value: 1}}},
		// Compound indexes for the scheduler's unscheduled/scheduled splits.
		{Keys: bson.D{{Key: "completed", Value: 1}, {Key: "scheduled_start_time", Value: 1}}},
		{Keys: bson.D{{Key: "completed", Value: 1}, {Key: "scheduling_constraints.deadline", Value: 1}}},
		{Keys: bson.D{{Key: "scheduled_start_time", Value: 1}, {Key: "scheduled_end_time", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
