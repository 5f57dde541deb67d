package models

// DefaultBookingSlots is the daily slot template used when a date has no
// timeslot document of its own.
var DefaultBookingSlots = []string{"10:00", "12:00", "14:00", "16:00", "18:00"}

// TimeSlotDay is the per-date timeslot document, keyed by ISO date. It is
// created lazily on the first booking write for a date and never deleted.
// Slots optionally overrides the default template; Booked is a set maintained
// with atomic $addToSet / $pull updates.
type TimeSlotDay struct {
	Date   string   `bson:"_id" json:"date"`
	Slots  []string `bson:"slots" json:"slots,omitempty"`
	Booked []string `bson:"booked,omitempty" json:"booked,omitempty"`
}

// Template returns the slot list for the day: the custom list when present,
// otherwise the default template. A stored empty list is a real value, it
// means the day has no bookable slots at all.
func (d *TimeSlotDay) Template() []string {
	if d != nil && d.Slots != nil {
		return d.Slots
	}
	return DefaultBookingSlots
}
