package booking

import (
	"context"
	"time"

	appointmentRepo "kdexpertise/database/repository/appointment"
	timeslotRepo "kdexpertise/database/repository/timeslot"
	"kdexpertise/models"
	appointmentSvc "kdexpertise/services/appointment"
	"kdexpertise/services/captcha"
	"kdexpertise/services/conversion"

	"github.com/go-redis/redis/v8"
)

// SlotService answers "which times are open on this date" and maintains the
// per-date booked set.
type SlotService interface {
	// AvailableSlots returns the open times for a date, in template order:
	// the day's slot template minus manually booked times minus times of
	// existing appointments. A date with no records means every template
	// slot is open.
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	// Book marks a time booked for a date. Atomic and idempotent.
	Book(ctx context.Context, date, timeOfDay string) error
	// Cancel releases a previously booked time. Atomic and idempotent.
	Cancel(ctx context.Context, date, timeOfDay string) error
}

// DefaultSlotService implements SlotService against the timeslot and
// appointment stores, with a short-lived Redis cache in front.
type DefaultSlotService struct {
	Timeslots    timeslotRepo.TimeSlotRepository
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client
}

// BookingSessionService drives the multi-step booking wizard. Session state
// lives in Redis under the session ID; every operation loads, checks the
// current step, mutates and stores back.
type BookingSessionService interface {
	InitiateSession(ctx context.Context) (*models.BookingSession, error)
	SelectService(ctx context.Context, sessionID, service, serviceType string) (*models.BookingSession, error)
	SelectDateTime(ctx context.Context, sessionID, date, timeOfDay string) (*models.BookingSession, error)
	UpdateDetails(ctx context.Context, sessionID string, details models.BookingDetails) (*models.BookingSession, *models.PriceQuote, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID, captchaToken string) (*models.BookingSession, error)
	Reset(ctx context.Context, sessionID string) (*models.BookingSession, error)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Slots        SlotService
	Appointments appointmentSvc.AppointmentService
	Captcha      captcha.Verifier
	Conversion   conversion.Reporter
	Sessions     *redis.Client
	// Clock is overridable in tests; nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
