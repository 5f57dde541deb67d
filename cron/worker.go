package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"kdexpertise/config"
	"kdexpertise/models"
	"kdexpertise/services/mail"
	"kdexpertise/utils"
)

// InitReminderWorker runs the asynq worker in the background. It delivers the
// day-before reminder emails enqueued by the scheduler.
func InitReminderWorker(mailer mail.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(mailer))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")

		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempt), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("reminder worker exhausted start attempts")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

func handleReminderTask(mailer mail.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			// Retrying a malformed payload can never succeed.
			return nil
		}

		msg := mail.ComposeReminder(models.Appointment{
			ID:       p.AppointmentID,
			Service:  p.Service,
			Date:     p.Date,
			Time:     p.Time,
			FullName: p.FullName,
			Email:    p.Email,
			Address:  p.Address,
		})
		if err := mailer.Send(ctx, msg); err != nil {
			logger.Error("failed to deliver reminder",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return err
		}

		logger.Info("reminder delivered",
			zap.String("appointmentId", p.AppointmentID), zap.String("date", p.Date))
		return nil
	}
}
