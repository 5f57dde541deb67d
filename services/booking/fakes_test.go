package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"kdexpertise/models"
)

// fakeTimeslotRepo is an in-memory TimeSlotRepository.
type fakeTimeslotRepo struct {
	mu   sync.Mutex
	days map[string]*models.TimeSlotDay
	err  error
}

func newFakeTimeslotRepo() *fakeTimeslotRepo {
	return &fakeTimeslotRepo{days: map[string]*models.TimeSlotDay{}}
}

func (f *fakeTimeslotRepo) GetByDate(_ context.Context, date string) (*models.TimeSlotDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	day, ok := f.days[date]
	if !ok {
		return nil, nil
	}
	copied := *day
	return &copied, nil
}

func (f *fakeTimeslotRepo) BookSlot(_ context.Context, date, timeOfDay string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	day := f.ensure(date)
	for _, t := range day.Booked {
		if t == timeOfDay {
			return nil
		}
	}
	day.Booked = append(day.Booked, timeOfDay)
	return nil
}

func (f *fakeTimeslotRepo) CancelSlot(_ context.Context, date, timeOfDay string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	day, ok := f.days[date]
	if !ok {
		return nil
	}
	kept := day.Booked[:0]
	for _, t := range day.Booked {
		if t != timeOfDay {
			kept = append(kept, t)
		}
	}
	day.Booked = kept
	return nil
}

func (f *fakeTimeslotRepo) SetSlots(_ context.Context, date string, slots []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.ensure(date).Slots = slots
	return nil
}

func (f *fakeTimeslotRepo) ensure(date string) *models.TimeSlotDay {
	day, ok := f.days[date]
	if !ok {
		day = &models.TimeSlotDay{Date: date}
		f.days[date] = day
	}
	return day
}

// fakeAppointmentRepo is an in-memory AppointmentRepository.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]models.Appointment
	err   error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: map[string]models.Appointment{}}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt models.Appointment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	f.appts[appt.ID] = appt
	return appt.ID, nil
}

func (f *fakeAppointmentRepo) ExistsForSlot(_ context.Context, date, timeOfDay, address string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.appts {
		if a.Date == date && a.Time == timeOfDay && a.Address == address {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentRepo) TimesByDate(_ context.Context, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var times []string
	for _, a := range f.appts {
		if a.Date == date {
			times = append(times, a.Time)
		}
	}
	return times, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &a, nil
}

// fakeAppointmentService records created appointments without side effects.
type fakeAppointmentService struct {
	mu      sync.Mutex
	created []models.Appointment
	err     error
}

func (f *fakeAppointmentService) Create(_ context.Context, appt models.Appointment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	appt.ID = uuid.NewString()
	f.created = append(f.created, appt)
	return appt.ID, nil
}

// fakeVerifier answers captcha checks from canned values.
type fakeVerifier struct {
	ok  bool
	err error
}

func (f *fakeVerifier) Verify(context.Context, string) (bool, error) {
	return f.ok, f.err
}

// recordingReporter captures conversion labels.
type recordingReporter struct {
	mu     sync.Mutex
	labels []string
}

func (r *recordingReporter) Report(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels = append(r.labels, label)
}

func (r *recordingReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.labels)
}
