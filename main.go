// File: taskpilot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskpilot/config"
	"taskpilot/cron"
	"taskpilot/database"
	settingsRepoPkg "taskpilot/database/repository/settings"
	taskRepoPkg "taskpilot/database/repository/task"
	"taskpilot/handlers"
	"taskpilot/middleware"
	"taskpilot/routes"
	scheduleSvc "taskpilot/services/schedule"
	"taskpilot/services/scheduling"
	settingsSvc "taskpilot/services/settings"
	taskSvc "taskpilot/services/task"
	"taskpilot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	taskRepo := taskRepoPkg.NewMongoTaskRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := taskRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to ensure task indexes: %v", err)
	}
	cancel()

	// services.
	taskService := &taskSvc.DefaultTaskService{
		Repo: taskRepo,
	}
	settingsService := &settingsSvc.DefaultSettingsService{
		Repo: settingsRepo,
	}

	engine := scheduling.NewDefaultSchedulingEngine()
	engine.HorizonDays = config.AppConfig.SchedulingHorizonDays

	scheduleService := scheduleSvc.NewDefaultScheduleService(
		taskRepo,
		settingsService,
		engine,
		utils.GetCacheClient(),
	)

	// Background scheduling queue and worker.
	cron.InitScheduleQueue()
	cron.InitScheduleWorker(scheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Task:     handlers.NewTaskHandler(taskService),
		Settings: handlers.NewSettingsHandler(settingsService),
		Schedule: handlers.NewScheduleHandler(scheduleService, cron.EnqueueScheduleRun),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
