package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"kdexpertise/config"
	"kdexpertise/models"
	"kdexpertise/utils"
)

const TypeReminderSend = "reminder:send"

// reminderHour is the local hour at which day-before reminders go out.
const reminderHour = 18

// ReminderPayload is the task body enqueued for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Email         string `json:"email"`
	FullName      string `json:"fullname"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Address       string `json:"address"`
}

// AsynqReminderScheduler enqueues appointment reminders on the asynq queue,
// to fire the evening before the appointment.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler on the configured queue DB.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqReminderScheduler{Client: client}
}

// ScheduleAppointmentReminder enqueues a reminder for the evening before the
// appointment. Appointments booked for today or tomorrow past the reminder
// hour simply get no reminder.
func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error {
	day, err := time.ParseInLocation(models.DateFormat, appt.Date, time.Local)
	if err != nil {
		return err
	}
	fireAt := day.AddDate(0, 0, -1).Add(reminderHour * time.Hour)
	if !fireAt.After(time.Now()) {
		utils.GetLogger().Info("skipping reminder, fire time already past",
			zap.String("appointmentId", appt.ID), zap.Time("fireAt", fireAt))
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		AppointmentID: appt.ID,
		Email:         appt.Email,
		FullName:      appt.FullName,
		Service:       appt.Service,
		Date:          appt.Date,
		Time:          appt.Time,
		Address:       appt.Address,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	info, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
	if err != nil {
		return err
	}
	utils.GetLogger().Info("reminder scheduled",
		zap.String("appointmentId", appt.ID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
