// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"

	"kdexpertise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TimeSlotRepository interface {
	// GetByDate returns the timeslot document for a date, or nil when the
	// date has no document yet (meaning: all template slots open).
	GetByDate(ctx context.Context, date string) (*models.TimeSlotDay, error)
	// BookSlot adds the time to the booked set for the date, creating the
	// document if absent. Atomic set-union, idempotent.
	BookSlot(ctx context.Context, date, timeOfDay string) error
	// CancelSlot removes the time from the booked set. Atomic
	// set-difference, idempotent; a no-op for unknown dates.
	CancelSlot(ctx context.Context, date, timeOfDay string) error
	// SetSlots replaces the custom slot template for a date.
	SetSlots(ctx context.Context, date string, slots []string) error
}

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a MongoDB TimeSlotRepository on the given
// database handle.
func NewMongoTimeSlotRepo(db *mongo.Database) TimeSlotRepository {
	return &mongoTimeSlotRepo{
		coll: db.Collection("timeslots"),
	}
}
