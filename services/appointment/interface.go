package appointment

import (
	"context"

	appointmentRepo "kdexpertise/database/repository/appointment"
	"kdexpertise/models"
	"kdexpertise/services/mail"

	"github.com/go-redis/redis/v8"
)

// AppointmentService records appointment requests and dispatches the
// surrounding notifications.
type AppointmentService interface {
	// Create validates the request, rejects duplicates for the same
	// (date, time, address), persists the appointment and sends the client
	// confirmation and admin alert. The emails are best-effort: once the
	// record is written the call succeeds even if dispatch fails.
	Create(ctx context.Context, appt models.Appointment) (string, error)
}

// ReminderScheduler enqueues a reminder to be delivered the day before the
// appointment. Optional; a nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo       appointmentRepo.AppointmentRepository
	Mailer     mail.Mailer
	AdminEmail string
	Reminders  ReminderScheduler
	// Cache, when set, has the availability entry for the booked date
	// dropped after a successful write.
	Cache *redis.Client
}
