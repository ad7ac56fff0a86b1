// File: handlers/task.go
package handlers

import (
	"errors"
	"net/http"

	taskService "taskpilot/services/task"
	"taskpilot/utils"

	"github.com/gin-gonic/gin"
)

// TaskHandler exposes task CRUD endpoints.
type TaskHandler struct {
	Service taskService.TaskService
}

// NewTaskHandler constructs a TaskHandler.
func NewTaskHandler(svc taskService.TaskService) *TaskHandler {
	return &TaskHandler{Service: svc}
}

// GetTasksHandler returns all tasks, newest first.
func (h *TaskHandler) GetTasksHandler(c *gin.Context) {
	tasks, err := h.Service.GetTasks(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch tasks", err.Error())
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskByIDHandler returns a single task.
func (h *TaskHandler) GetTaskByIDHandler(c *gin.Context) {
	task, err := h.Service.GetTaskByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, taskService.ErrTaskNotFound) {
			utils.JSONError(c, http.StatusNotFound, "task not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch task", err.Error())
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTaskHandler creates a task from structured attributes.
func (h *TaskHandler) CreateTaskHandler(c *gin.Context) {
	var input taskService.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	task, err := h.Service.CreateTask(c.Request.Context(), input)
	if err != nil {
		if input.Description == "" {
			utils.JSONError(c, http.StatusBadRequest, "task description is required", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create task", err.Error())
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTaskHandler partially updates a task.
func (h *TaskHandler) UpdateTaskHandler(c *gin.Context) {
	var input taskService.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	task, err := h.Service.UpdateTask(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, taskService.ErrTaskNotFound) {
			utils.JSONError(c, http.StatusNotFound, "task not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update task", err.Error())
		return
	}
	c.JSON(http.StatusOK, task)
}

// UnscheduleTaskHandler clears a task's assigned slot.
func (h *TaskHandler) UnscheduleTaskHandler(c *gin.Context) {
	if err := h.Service.UnscheduleTask(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, taskService.ErrTaskNotFound) {
			utils.JSONError(c, http.StatusNotFound, "task not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to unschedule task", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task unscheduled"})
}

// DeleteTaskHandler deletes a task.
func (h *TaskHandler) DeleteTaskHandler(c *gin.Context) {
	if err := h.Service.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, taskService.ErrTaskNotFound) {
			utils.JSONError(c, http.StatusNotFound, "task not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete task", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task removed"})
}
