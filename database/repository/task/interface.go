// File: database/repository/task/interface.go
package taskRepo

import (
	"context"
	"time"

	"taskpilot/config"
	"taskpilot/database"
	"taskpilot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	// GetUnscheduled returns incomplete tasks with no scheduled start time.
	GetUnscheduled(ctx context.Context) ([]models.Task, error)
	// GetScheduled returns incomplete tasks that already hold a slot.
	GetScheduled(ctx context.Context) ([]models.Task, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Task, error)
	// SetSchedule writes a committed assignment back onto the task.
	SetSchedule(ctx context.Context, id string, start, end time.Time) error
	// ClearSchedule removes a task's slot so a later run can re-place it.
	ClearSchedule(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoTaskRepo struct {
	coll *mongo.Collection
}

// NewMongoTaskRepo constructs a new MongoDB TaskRepository.
func NewMongoTaskRepo() TaskRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoTaskRepo{
		coll: db.Collection("tasks"),
	}
}
