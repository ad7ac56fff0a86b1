// File: services/task/task.go
package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	taskRepo "taskpilot/database/repository/task"
	"taskpilot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrTaskNotFound is returned when the referenced task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// CreateTaskInput is the payload for creating a task. Attribute extraction
// from free text happens upstream; this service receives structured fields.
type CreateTaskInput struct {
	Description       string                       `json:"description"`
	Title             string                       `json:"title"`
	Tags              []string                     `json:"tags"`
	EstimatedDuration int                          `json:"estimated_duration"`
	Priority          int                          `json:"priority"`
	Category          string                       `json:"category"`
	DerivedLocation   string                       `json:"derived_location"`
	Constraints       models.SchedulingConstraints `json:"scheduling_constraints"`
}

// UpdateTaskInput carries the updatable task fields; nil means "leave as is".
type UpdateTaskInput struct {
	Description       *string    `json:"description"`
	Title             *string    `json:"title"`
	Completed         *bool      `json:"completed"`
	EstimatedDuration *int       `json:"estimated_duration"`
	Priority          *int       `json:"priority"`
	Category          *string    `json:"category"`
	ScheduledStart    *time.Time `json:"scheduled_start_time"`
	ScheduledEnd      *time.Time `json:"scheduled_end_time"`
}

// TaskService defines business logic for task operations.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error)
	GetTasks(ctx context.Context) ([]models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*models.Task, error)
	// UnscheduleTask drops a task's slot so the next scheduling run can
	// re-place it.
	UnscheduleTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
}

// DefaultTaskService is the production implementation.
type DefaultTaskService struct {
	Repo taskRepo.TaskRepository
}

// CreateTask validates the description, applies defaults (30-minute
// duration, priority 3, category "General") and persists the task.
func (s *DefaultTaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if input.Description == "" {
		return nil, fmt.Errorf("task description is required")
	}

	now := time.Now()
	task := models.Task{
		ID:                uuid.New().String(),
		Title:             input.Title,
		Description:       input.Description,
		Tags:              input.Tags,
		EstimatedDuration: input.EstimatedDuration,
		Priority:          input.Priority,
		Category:          input.Category,
		DerivedLocation:   input.DerivedLocation,
		Constraints:       input.Constraints,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if task.Title == "" {
		task.Title = truncate(input.Description, 40)
	}
	if task.EstimatedDuration <= 0 {
		task.EstimatedDuration = 30
	}
	if task.Priority < 1 || task.Priority > 10 {
		task.Priority = 3
	}
	if task.Category == "" {
		task.Category = "General"
	}

	if err := s.Repo.Create(ctx, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

func (s *DefaultTaskService) GetTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return tasks, nil
}

func (s *DefaultTaskService) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to fetch task %s: %w", id, err)
	}
	return task, nil
}

func (s *DefaultTaskService) UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*models.Task, error) {
	fields := make(map[string]interface{})
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Completed != nil {
		fields["completed"] = *input.Completed
	}
	if input.EstimatedDuration != nil {
		fields["estimated_duration"] = *input.EstimatedDuration
	}
	if input.Priority != nil {
		fields["priority"] = *input.Priority
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.ScheduledStart != nil {
		fields["scheduled_start_time"] = *input.ScheduledStart
	}
	if input.ScheduledEnd != nil {
		fields["scheduled_end_time"] = *input.ScheduledEnd
	}
	if len(fields) == 0 {
		return s.GetTaskByID(ctx, id)
	}

	updated, err := s.Repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return updated, nil
}

func (s *DefaultTaskService) UnscheduleTask(ctx context.Context, id string) error {
	if err := s.Repo.ClearSchedule(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to unschedule task %s: %w", id, err)
	}
	return nil
}

func (s *DefaultTaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
