// File: handlers/schedule.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"taskpilot/config"
	scheduleService "taskpilot/services/schedule"
	"taskpilot/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// ScheduleHandler exposes the scheduling-run and availability endpoints.
type ScheduleHandler struct {
	Service scheduleService.ScheduleService
	// Enqueue pushes a scheduling run onto the background queue and
	// returns the queued task id.
	Enqueue func(ctx context.Context) (string, error)
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc scheduleService.ScheduleService, enqueue func(ctx context.Context) (string, error)) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Enqueue: enqueue}
}

// RunSchedulerHandler runs the scheduling process synchronously.
func (h *ScheduleHandler) RunSchedulerHandler(c *gin.Context) {
	result, err := h.Service.RunScheduler(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "scheduling run failed", err.Error())
		return
	}
	if result.ScheduledCount == 0 && len(result.UnscheduledTaskIDs) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no tasks to schedule", "result": result})
		return
	}
	c.JSON(http.StatusOK, result)
}

// RunSchedulerAsyncHandler enqueues a scheduling run on the background
// worker and responds immediately.
func (h *ScheduleHandler) RunSchedulerAsyncHandler(c *gin.Context) {
	if h.Enqueue == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "background scheduling not available", "")
		return
	}
	taskID, err := h.Enqueue(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to enqueue scheduling run", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "scheduling run queued", "taskId": taskID})
}

// GetAvailabilityHandler returns the free slots for a date range. Defaults
// to the engine's scheduling horizon starting today.
func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := config.AppConfig.SchedulingHorizonDays
	if horizon <= 0 {
		horizon = 14
	}
	end := start.AddDate(0, 0, horizon-1)

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, now.Location())
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid start date", "expected YYYY-MM-DD")
			return
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, now.Location())
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid end date", "expected YYYY-MM-DD")
			return
		}
		end = parsed
	}
	if end.Before(start) {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "end date precedes start date")
		return
	}

	slots, err := h.Service.GetAvailability(c.Request.Context(), start, end)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
