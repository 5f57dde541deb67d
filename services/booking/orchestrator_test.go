package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kdexpertise/models"
)

// fixedNow is a deterministic "current time" well before the test dates.
var fixedNow = time.Date(2026, 9, 1, 9, 30, 0, 0, time.Local)

type sessionFixture struct {
	svc      *DefaultBookingSessionService
	appts    *fakeAppointmentService
	verifier *fakeVerifier
	reporter *recordingReporter
	sessions *miniredis.Miniredis
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	appts := &fakeAppointmentService{}
	verifier := &fakeVerifier{ok: true}
	reporter := &recordingReporter{}
	slotSvc := &DefaultSlotService{
		Timeslots:    newFakeTimeslotRepo(),
		Appointments: newFakeAppointmentRepo(),
	}
	svc := &DefaultBookingSessionService{
		Slots:        slotSvc,
		Appointments: appts,
		Captcha:      verifier,
		Conversion:   reporter,
		Sessions:     client,
		Clock:        func() time.Time { return fixedNow },
	}
	return &sessionFixture{svc: svc, appts: appts, verifier: verifier, reporter: reporter, sessions: mr}
}

func details() models.BookingDetails {
	return models.BookingDetails{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean@example.com",
		Phone:     "+32470000001",
		Address:   "Rue de la Loi 16, 1000 Bruxelles",
		Notes:     "Interphone en panne",
	}
}

// walk advances a fresh session to the info step.
func (f *sessionFixture) walkToInfo(t *testing.T) *models.BookingSession {
	t.Helper()
	ctx := context.Background()
	sess, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)
	sess, err = f.svc.SelectService(ctx, sess.SessionID, "etat-des-lieux-locatif", "edl")
	require.NoError(t, err)
	sess, err = f.svc.SelectDateTime(ctx, sess.SessionID, "2026-09-10", "14:00")
	require.NoError(t, err)
	return sess
}

func TestInitiateSessionStartsAtServiceStep(t *testing.T) {
	f := newSessionFixture(t)

	sess, err := f.svc.InitiateSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sess.SessionID)
	assert.Equal(t, models.StepService, sess.Step)
}

func TestSessionStepProgression(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	sess, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)

	sess, err = f.svc.SelectService(ctx, sess.SessionID, "etat-des-lieux-locatif", "edl")
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, sess.Step)

	sess, err = f.svc.SelectDateTime(ctx, sess.SessionID, "2026-09-10", "14:00")
	require.NoError(t, err)
	assert.Equal(t, models.StepInfo, sess.Step)
	assert.Equal(t, "2026-09-10", sess.Date)
	assert.Equal(t, "14:00", sess.Time)
}

func TestOperationsRejectWrongStep(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	sess, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.SelectDateTime(ctx, sess.SessionID, "2026-09-10", "14:00")
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, _, err = f.svc.UpdateDetails(ctx, sess.SessionID, details())
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = f.svc.Confirm(ctx, sess.SessionID, "token")
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestUnknownSessionIsNotFound(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.svc.SelectService(context.Background(), "no-such-session", "x", "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExpiredSessionIsNotFound(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	sess, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)

	f.sessions.FastForward(sessionTTL + time.Minute)

	_, err = f.svc.SelectService(ctx, sess.SessionID, "etat-des-lieux-locatif", "edl")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSelectDateTimeRejectsPast(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	sess, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)
	sess, err = f.svc.SelectService(ctx, sess.SessionID, "etat-des-lieux-locatif", "edl")
	require.NoError(t, err)

	_, err = f.svc.SelectDateTime(ctx, sess.SessionID, "2026-08-31", "14:00")
	assert.ErrorIs(t, err, ErrPastDate)

	// Malformed strings are rejected as invalid, not as past.
	_, err = f.svc.SelectDateTime(ctx, sess.SessionID, "31/08/2026", "14:00")
	assert.ErrorIs(t, err, ErrInvalidDateTime)
	_, err = f.svc.SelectDateTime(ctx, sess.SessionID, "2026-09-10", "2pm")
	assert.ErrorIs(t, err, ErrInvalidDateTime)

	// Same day, but the slot hour is already behind the clock.
	_, err = f.svc.SelectDateTime(ctx, sess.SessionID, fixedNow.Format(models.DateFormat), "08:00")
	assert.ErrorIs(t, err, ErrPastDate)

	// Same day, slot still ahead.
	_, err = f.svc.SelectDateTime(ctx, sess.SessionID, fixedNow.Format(models.DateFormat), "14:00")
	assert.NoError(t, err)
}

func TestSelectDateTimeRejectsTakenSlot(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Slots.Book(ctx, "2026-09-10", "14:00"))

	sess, err := f.svc.InitiateSession(ctx)
	require.NoError(t, err)
	sess, err = f.svc.SelectService(ctx, sess.SessionID, "etat-des-lieux-locatif", "edl")
	require.NoError(t, err)

	_, err = f.svc.SelectDateTime(ctx, sess.SessionID, "2026-09-10", "14:00")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUpdateDetailsReturnsQuoteForInspection(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sess := f.walkToInfo(t)

	d := details()
	d.Inspection = &models.InspectionDetails{
		BookingType:  "entree",
		PropertyKind: models.PropertyAppartement,
		Bedrooms:     2,
		Bathrooms:    1,
		Meuble:       true,
	}
	updated, quote, err := f.svc.UpdateDetails(ctx, sess.SessionID, d)
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, 165.0, quote.PricePerParty)
	assert.Equal(t, 330.0, quote.Total)
	assert.Equal(t, models.StepInfo, updated.Step)
}

func TestUpdateDetailsWithoutInspectionHasNoQuote(t *testing.T) {
	f := newSessionFixture(t)
	sess := f.walkToInfo(t)

	_, quote, err := f.svc.UpdateDetails(context.Background(), sess.SessionID, details())
	require.NoError(t, err)
	assert.Nil(t, quote)
}

func TestBackKeepsEarlierStepData(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sess := f.walkToInfo(t)

	sess, err := f.svc.Back(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDateTime, sess.Step)
	assert.Equal(t, "etat-des-lieux-locatif", sess.Service)
	assert.Equal(t, "2026-09-10", sess.Date)

	sess, err = f.svc.Back(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepService, sess.Step)

	_, err = f.svc.Back(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestConfirmHappyPath(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sess := f.walkToInfo(t)

	_, _, err := f.svc.UpdateDetails(ctx, sess.SessionID, details())
	require.NoError(t, err)

	confirmed, err := f.svc.Confirm(ctx, sess.SessionID, "valid-token")
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmation, confirmed.Step)
	assert.NotEmpty(t, confirmed.AppointmentID)

	require.Len(t, f.appts.created, 1)
	appt := f.appts.created[0]
	assert.Equal(t, "Jean Dupont", appt.FullName)
	assert.Equal(t, "etat-des-lieux-locatif", appt.Service)
	assert.Equal(t, "2026-09-10", appt.Date)
	assert.Equal(t, "14:00", appt.Time)
	assert.Equal(t, "Interphone en panne", appt.Message)

	// The slot is now gone from availability.
	open, err := f.svc.Slots.AvailableSlots(ctx, "2026-09-10")
	require.NoError(t, err)
	assert.NotContains(t, open, "14:00")

	// The conversion ping runs async.
	assert.Eventually(t, func() bool { return f.reporter.count() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestConfirmRequiresToken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sess := f.walkToInfo(t)
	_, _, err := f.svc.UpdateDetails(ctx, sess.SessionID, details())
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, sess.SessionID, "")
	assert.ErrorIs(t, err, ErrCaptchaFailed)
	assert.Empty(t, f.appts.created)
}

func TestConfirmRejectedCaptchaCreatesNothing(t *testing.T) {
	f := newSessionFixture(t)
	f.verifier.ok = false
	ctx := context.Background()
	sess := f.walkToInfo(t)
	_, _, err := f.svc.UpdateDetails(ctx, sess.SessionID, details())
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, sess.SessionID, "bad-token")
	assert.ErrorIs(t, err, ErrCaptchaFailed)
	assert.Empty(t, f.appts.created)
	assert.Zero(t, f.reporter.count())
}

func TestConfirmWithoutDetailsFails(t *testing.T) {
	f := newSessionFixture(t)
	sess := f.walkToInfo(t)

	_, err := f.svc.Confirm(context.Background(), sess.SessionID, "token")
	assert.ErrorIs(t, err, ErrMissingDetails)
}

func TestConfirmFailureKeepsSessionAtInfoStep(t *testing.T) {
	f := newSessionFixture(t)
	f.appts.err = errors.New("mongo down")
	ctx := context.Background()
	sess := f.walkToInfo(t)
	_, _, err := f.svc.UpdateDetails(ctx, sess.SessionID, details())
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, sess.SessionID, "token")
	require.Error(t, err)

	// The session survives for a retry.
	f.appts.err = nil
	confirmed, err := f.svc.Confirm(ctx, sess.SessionID, "token")
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmation, confirmed.Step)
}

func TestResetClearsConfirmedSessionInPlace(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sess := f.walkToInfo(t)
	_, _, err := f.svc.UpdateDetails(ctx, sess.SessionID, details())
	require.NoError(t, err)
	confirmed, err := f.svc.Confirm(ctx, sess.SessionID, "token")
	require.NoError(t, err)

	cleared, err := f.svc.Reset(ctx, confirmed.SessionID)
	require.NoError(t, err)
	assert.Equal(t, sess.SessionID, cleared.SessionID)
	assert.Equal(t, models.StepService, cleared.Step)
	assert.Empty(t, cleared.Service)
	assert.Empty(t, cleared.Date)
	assert.Nil(t, cleared.Details)
	assert.Empty(t, cleared.AppointmentID)
}

func TestResetRejectsMidWizardSession(t *testing.T) {
	f := newSessionFixture(t)
	sess := f.walkToInfo(t)

	_, err := f.svc.Reset(context.Background(), sess.SessionID)
	assert.ErrorIs(t, err, ErrInvalidStep)
}
