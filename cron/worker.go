package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"taskpilot/config"
	scheduleService "taskpilot/services/schedule"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeScheduleRun = "schedule:run"

var queueClient *asynq.Client

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitScheduleQueue sets up the asynq client used to enqueue scheduling runs.
func InitScheduleQueue() {
	queueClient = asynq.NewClient(queueRedisOpts())
}

// EnqueueScheduleRun enqueues a scheduling run and returns the queued task id.
func EnqueueScheduleRun(ctx context.Context) (string, error) {
	if queueClient == nil {
		return "", fmt.Errorf("schedule queue not initialized")
	}
	task := asynq.NewTask(TypeScheduleRun, nil)
	info, err := queueClient.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Timeout(2*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to enqueue scheduling run: %w", err)
	}
	return info.ID, nil
}

// InitScheduleWorker runs the async worker in background.
func InitScheduleWorker(scheduleSvc scheduleService.ScheduleService) {
	srv := asynq.NewServer(
		queueRedisOpts(),
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleRun, handleScheduleRunTask(scheduleSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ScheduleWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ScheduleWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ScheduleWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleScheduleRunTask(scheduleSvc scheduleService.ScheduleService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		log.Printf("[ScheduleHandler] ⏰ Running background scheduling pass")

		result, err := scheduleSvc.RunScheduler(ctx)
		if err != nil {
			log.Printf("[ScheduleHandler] ❌ Scheduling run failed: %v", err)
			return err
		}

		log.Printf("[ScheduleHandler] ✅ Scheduled %d task(s), %d left unscheduled",
			result.ScheduledCount, len(result.UnscheduledTaskIDs))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ScheduleWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
