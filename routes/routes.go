package routes

import (
	"net/http"
	"time"

	"taskpilot/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTaskRoutes registers task CRUD endpoints.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tasks")
	{
		api.GET("", hb.Task.GetTasksHandler)
		api.POST("", hb.Task.CreateTaskHandler)
		api.GET("/:id", hb.Task.GetTaskByIDHandler)
		api.PUT("/:id", hb.Task.UpdateTaskHandler)
		api.DELETE("/:id/schedule", hb.Task.UnscheduleTaskHandler)
		api.DELETE("/:id", hb.Task.DeleteTaskHandler)
	}
}

// RegisterSettingsRoutes registers working-hours settings endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.GET("", hb.Settings.GetSettingsHandler)
		api.PUT("", hb.Settings.UpdateSettingsHandler)
	}
}

// RegisterScheduleRoutes sets up the endpoints for the scheduling engine.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	scheduleGroup := r.Group("/api/schedule")
	{
		scheduleGroup.POST("/run", hb.Schedule.RunSchedulerHandler)
		scheduleGroup.POST("/run/async", hb.Schedule.RunSchedulerAsyncHandler)
		scheduleGroup.GET("/availability", hb.Schedule.GetAvailabilityHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TaskPilot"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterTaskRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
}
