// Seeds a development database with a week of timeslot documents and a few
// appointments, so the availability and booking endpoints have data to serve.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"kdexpertise/config"
	"kdexpertise/database"
	appointmentRepo "kdexpertise/database/repository/appointment"
	timeslotRepo "kdexpertise/database/repository/timeslot"
	"kdexpertise/models"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Start from a clean slate.
	if _, err := db.Collection("appointments").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear appointments collection: %v", err)
	}
	if _, err := db.Collection("timeslots").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear timeslots collection: %v", err)
	}
	if err := appointmentRepo.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	slots := timeslotRepo.NewMongoTimeSlotRepo(db)
	appts := appointmentRepo.NewMongoAppointmentRepo(db)

	// A week of dates starting tomorrow; weekdays get the default template,
	// Saturday a reduced morning-only one.
	today := time.Now()
	for i := 1; i <= 7; i++ {
		day := today.AddDate(0, 0, i)
		date := day.Format(models.DateFormat)
		switch day.Weekday() {
		case time.Sunday:
			if err := slots.SetSlots(ctx, date, []string{}); err != nil {
				log.Fatalf("Failed to close %s: %v", date, err)
			}
		case time.Saturday:
			if err := slots.SetSlots(ctx, date, []string{"10:00", "12:00"}); err != nil {
				log.Fatalf("Failed to set Saturday slots for %s: %v", date, err)
			}
		}
	}

	// A couple of booked appointments on the first weekday.
	firstDate := today.AddDate(0, 0, 1).Format(models.DateFormat)
	samples := []models.Appointment{
		{
			Service:  "etat-des-lieux-locatif",
			Date:     firstDate,
			Time:     "10:00",
			FullName: "Jean Dupont",
			Email:    "jean.dupont@example.com",
			Phone:    "+32470000001",
			Address:  "Rue de la Loi 16, 1000 Bruxelles",
			Message:  "Appartement 2 chambres, 1 salle de bain",
		},
		{
			Service:  "expertise-avant-travaux",
			Date:     firstDate,
			Time:     "14:00",
			FullName: "Marie Lambert",
			Email:    "marie.lambert@example.com",
			Phone:    "+32470000002",
			Address:  "Avenue Louise 100, 1050 Ixelles",
		},
	}
	for _, appt := range samples {
		appt.Status = models.AppointmentStatusPending
		appt.CreatedAt = time.Now().UTC()
		id, err := appts.Create(ctx, appt)
		if err != nil {
			log.Fatalf("Failed to seed appointment: %v", err)
		}
		if err := slots.BookSlot(ctx, appt.Date, appt.Time); err != nil {
			log.Fatalf("Failed to mark slot booked: %v", err)
		}
		log.Printf("Seeded appointment %s on %s %s", id, appt.Date, appt.Time)
	}

	log.Println("Seeding complete")
}
