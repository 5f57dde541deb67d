// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"kdexpertise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	// Create inserts the appointment and returns its assigned ID.
	Create(ctx context.Context, appt models.Appointment) (string, error)
	// ExistsForSlot reports whether an appointment already exists for the
	// (date, time, address) triple. Pre-write duplicate check only; two
	// concurrent creators can both see false.
	ExistsForSlot(ctx context.Context, date, timeOfDay, address string) (bool, error)
	// TimesByDate returns the times of all appointments booked on a date.
	TimesByDate(ctx context.Context, date string) ([]string, error)
	// GetByID fetches a single appointment.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository on the
// given database handle.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
