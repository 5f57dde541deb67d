// File: database/repository/timeslot/crud.go
package timeslotRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kdexpertise/models"
)

func (r *mongoTimeSlotRepo) GetByDate(ctx context.Context, date string) (*models.TimeSlotDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var day models.TimeSlotDay
	err := r.coll.FindOne(ctx, bson.M{"_id": date}).Decode(&day)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *mongoTimeSlotRepo) BookSlot(ctx context.Context, date, timeOfDay string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// $addToSet keeps the booked list a set, so a double booking of the
	// same time is a no-op rather than a duplicate entry.
	update := bson.M{"$addToSet": bson.M{"booked": timeOfDay}}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateByID(ctx, date, update, opts)
	return err
}

func (r *mongoTimeSlotRepo) CancelSlot(ctx context.Context, date, timeOfDay string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"booked": timeOfDay}}
	_, err := r.coll.UpdateByID(ctx, date, update)
	return err
}

func (r *mongoTimeSlotRepo) SetSlots(ctx context.Context, date string, slots []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"slots": slots}}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateByID(ctx, date, update, opts)
	return err
}
