package models

import "time"

const (
	AppointmentStatusPending = "pending"

	// DateFormat is the wire and storage format for calendar dates.
	DateFormat = "2006-01-02"
	// TimeFormat is the wire and storage format for slot times.
	TimeFormat = "15:04"
)

// Appointment is one booked inspection request, owned by the appointment
// service. At most one appointment should exist per (date, time, address)
// triple; the check is best-effort, not a database constraint.
type Appointment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Service   string    `bson:"service" json:"service"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time" json:"time"`
	FullName  string    `bson:"fullname" json:"fullname"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Address   string    `bson:"address" json:"address"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
