package booking

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kdexpertise/models"
	"kdexpertise/services/conversion"
	"kdexpertise/services/pricing"
	"kdexpertise/utils"
)

// sessionTTL is how long an idle booking session survives. Each successful
// operation refreshes it.
const sessionTTL = 30 * time.Minute

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	raw, err := s.Sessions.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess models.BookingSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, sess *models.BookingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.Sessions.Set(ctx, sessionKey(sess.SessionID), data, sessionTTL).Err()
}

func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context) (*models.BookingSession, error) {
	sess := &models.BookingSession{
		SessionID: uuid.NewString(),
		Step:      models.StepService,
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultBookingSessionService) SelectService(ctx context.Context, sessionID, service, serviceType string) (*models.BookingSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != models.StepService {
		return nil, ErrInvalidStep
	}
	if strings.TrimSpace(service) == "" {
		return nil, ErrInvalidStep
	}
	sess.Service = service
	sess.ServiceType = serviceType
	sess.Step = models.StepDateTime
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultBookingSessionService) SelectDateTime(ctx context.Context, sessionID, date, timeOfDay string) (*models.BookingSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != models.StepDateTime {
		return nil, ErrInvalidStep
	}

	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return nil, ErrInvalidDateTime
	}
	if _, err := time.Parse(models.TimeFormat, timeOfDay); err != nil {
		return nil, ErrInvalidDateTime
	}
	// Dates and times are zero-padded ISO strings, so lexical order is
	// chronological order.
	now := s.now()
	today := now.Format(models.DateFormat)
	if date < today {
		return nil, ErrPastDate
	}
	if date == today && timeOfDay <= now.Format(models.TimeFormat) {
		return nil, ErrPastDate
	}

	open, err := s.Slots.AvailableSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	found := false
	for _, t := range open {
		if t == timeOfDay {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrSlotUnavailable
	}

	sess.Date = date
	sess.Time = timeOfDay
	sess.Step = models.StepInfo
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultBookingSessionService) UpdateDetails(ctx context.Context, sessionID string, details models.BookingDetails) (*models.BookingSession, *models.PriceQuote, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess.Step != models.StepInfo {
		return nil, nil, ErrInvalidStep
	}

	sess.Details = &details
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, nil, err
	}

	var quote *models.PriceQuote
	if details.Inspection != nil {
		q := pricing.ComputeQuote(models.ServiceRequestFromDetails(details.Inspection))
		quote = &q
	}
	return sess, quote, nil
}

func (s *DefaultBookingSessionService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch sess.Step {
	case models.StepDateTime:
		sess.Step = models.StepService
	case models.StepInfo:
		sess.Step = models.StepDateTime
	default:
		return nil, ErrInvalidStep
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultBookingSessionService) Confirm(ctx context.Context, sessionID, captchaToken string) (*models.BookingSession, error) {
	logger := utils.GetLogger()

	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != models.StepInfo {
		return nil, ErrInvalidStep
	}
	d := sess.Details
	if d == nil || d.FirstName == "" || d.LastName == "" || d.Email == "" || d.Phone == "" || d.Address == "" {
		return nil, ErrMissingDetails
	}

	if strings.TrimSpace(captchaToken) == "" {
		return nil, ErrCaptchaFailed
	}
	ok, err := s.Captcha.Verify(ctx, captchaToken)
	if err != nil {
		logger.Error("captcha verification failed", zap.Error(err))
		return nil, ErrCaptchaFailed
	}
	if !ok {
		return nil, ErrCaptchaFailed
	}

	appt := models.Appointment{
		Service:  sess.Service,
		Date:     sess.Date,
		Time:     sess.Time,
		FullName: strings.TrimSpace(d.FirstName + " " + d.LastName),
		Email:    d.Email,
		Phone:    d.Phone,
		Address:  d.Address,
		Message:  d.Notes,
	}
	id, err := s.Appointments.Create(ctx, appt)
	if err != nil {
		// The session stays at the info step so the client can retry.
		return nil, err
	}

	go s.Conversion.Report(conversion.BookingLabel)

	if err := s.Slots.Book(ctx, sess.Date, sess.Time); err != nil {
		// The appointment record is authoritative; a failed ledger write
		// only costs a cache round trip on the next availability read.
		logger.Warn("failed to record booked slot",
			zap.String("date", sess.Date), zap.String("time", sess.Time), zap.Error(err))
	}

	sess.AppointmentID = id
	sess.Step = models.StepConfirmation
	if err := s.saveSession(ctx, sess); err != nil {
		logger.Warn("failed to persist confirmed session", zap.Error(err))
	}
	return sess, nil
}

// Reset clears a confirmed session back to the service step so the same
// visitor can book another appointment. Mid-wizard sessions use Back instead.
func (s *DefaultBookingSessionService) Reset(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != models.StepConfirmation {
		return nil, ErrInvalidStep
	}
	cleared := &models.BookingSession{
		SessionID: sessionID,
		Step:      models.StepService,
	}
	if err := s.saveSession(ctx, cleared); err != nil {
		return nil, err
	}
	return cleared, nil
}
