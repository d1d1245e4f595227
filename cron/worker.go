package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"worklink/config"
	"worklink/models"
	"worklink/services/tasks"
	"worklink/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitOutcomeWorker runs the async worker consuming reservation outcomes in
// the background. The handler is the hand-off point to the notification
// module; this service only surfaces the outcome, it sends nothing itself.
func InitOutcomeWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationOutcome, handleOutcomeTask)

	go func() {
		log.Println("[OutcomeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[OutcomeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[OutcomeWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleOutcomeTask(ctx context.Context, task *asynq.Task) error {
	var outcome models.ReservationOutcome
	if err := json.Unmarshal(task.Payload(), &outcome); err != nil {
		utils.GetLogger().Error("invalid outcome payload", zap.Error(err))
		return err
	}

	utils.GetLogger().Info("reservation outcome",
		zap.String("event", outcome.Event),
		zap.String("commitmentID", outcome.CommitmentID),
		zap.String("professionalID", outcome.ProfessionalID),
		zap.String("reason", outcome.Reason))
	return nil
}
