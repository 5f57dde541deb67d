package booking

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kdexpertise/models"
	"kdexpertise/utils"
)

func newSlotService(t *testing.T) (*DefaultSlotService, *fakeTimeslotRepo, *fakeAppointmentRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	slots := newFakeTimeslotRepo()
	appts := newFakeAppointmentRepo()
	svc := &DefaultSlotService{Timeslots: slots, Appointments: appts, Cache: cache}
	return svc, slots, appts, mr
}

func TestAvailableSlotsUnknownDateIsFullTemplate(t *testing.T) {
	svc, _, _, _ := newSlotService(t)

	open, err := svc.AvailableSlots(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBookingSlots, open)
}

func TestAvailableSlotsExcludesBookedAndAppointments(t *testing.T) {
	svc, slots, appts, _ := newSlotService(t)
	ctx := context.Background()

	require.NoError(t, slots.BookSlot(ctx, "2026-09-10", "12:00"))
	_, err := appts.Create(ctx, models.Appointment{Date: "2026-09-10", Time: "16:00"})
	require.NoError(t, err)

	open, err := svc.AvailableSlots(ctx, "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "14:00", "18:00"}, open)
}

func TestAvailableSlotsHonorsCustomTemplate(t *testing.T) {
	svc, slots, _, _ := newSlotService(t)
	ctx := context.Background()

	require.NoError(t, slots.SetSlots(ctx, "2026-09-12", []string{"09:00", "11:00"}))
	require.NoError(t, slots.BookSlot(ctx, "2026-09-12", "09:00"))

	open, err := svc.AvailableSlots(ctx, "2026-09-12")
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00"}, open)
}

func TestAvailableSlotsEmptyTemplateClosesDay(t *testing.T) {
	svc, slots, _, _ := newSlotService(t)
	ctx := context.Background()

	// An explicitly empty slot list means the day is closed; it must not
	// fall back to the default template.
	require.NoError(t, slots.SetSlots(ctx, "2026-09-13", []string{}))

	open, err := svc.AvailableSlots(ctx, "2026-09-13")
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestBookThenCancelRoundTrip(t *testing.T) {
	svc, _, _, _ := newSlotService(t)
	ctx := context.Background()
	const date = "2026-09-10"

	require.NoError(t, svc.Book(ctx, date, "14:00"))
	open, err := svc.AvailableSlots(ctx, date)
	require.NoError(t, err)
	assert.NotContains(t, open, "14:00")

	require.NoError(t, svc.Cancel(ctx, date, "14:00"))
	open, err = svc.AvailableSlots(ctx, date)
	require.NoError(t, err)
	assert.Contains(t, open, "14:00")
}

func TestBookIsIdempotent(t *testing.T) {
	svc, slots, _, _ := newSlotService(t)
	ctx := context.Background()
	const date = "2026-09-10"

	require.NoError(t, svc.Book(ctx, date, "10:00"))
	require.NoError(t, svc.Book(ctx, date, "10:00"))

	day, err := slots.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, day.Booked)
}

func TestAvailableSlotsCachesResult(t *testing.T) {
	svc, slots, _, mr := newSlotService(t)
	ctx := context.Background()
	const date = "2026-09-10"

	_, err := svc.AvailableSlots(ctx, date)
	require.NoError(t, err)
	assert.True(t, mr.Exists(utils.AvailabilityCacheKey(date)))

	// A stale cache hides store changes until invalidated.
	require.NoError(t, slots.BookSlot(ctx, date, "10:00"))
	open, err := svc.AvailableSlots(ctx, date)
	require.NoError(t, err)
	assert.Contains(t, open, "10:00")

	// Booking through the service drops the cache entry.
	require.NoError(t, svc.Book(ctx, date, "12:00"))
	assert.False(t, mr.Exists(utils.AvailabilityCacheKey(date)))

	open, err = svc.AvailableSlots(ctx, date)
	require.NoError(t, err)
	assert.NotContains(t, open, "10:00")
	assert.NotContains(t, open, "12:00")
}

func TestAvailableSlotsWorksWithoutCache(t *testing.T) {
	slots := newFakeTimeslotRepo()
	appts := newFakeAppointmentRepo()
	svc := &DefaultSlotService{Timeslots: slots, Appointments: appts}

	open, err := svc.AvailableSlots(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBookingSlots, open)
}
