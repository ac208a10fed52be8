package bookings

import (
	"context"
	"time"

	"fairway/db"
	"fairway/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Store persists bookings in Mongo. It satisfies checkout.BookingWriter.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Create(ctx context.Context, b models.Booking) error {
	_, err := db.BookingsCollection.InsertOne(ctx, b)
	return err
}

func (s *Store) Cancel(ctx context.Context, bookingID string) error {
	update := bson.M{"$set": bson.M{
		"status":    models.BookingCancelled,
		"updatedAt": time.Now(),
	}}
	_, err := db.BookingsCollection.UpdateOne(ctx, bson.M{"bookingid": bookingID}, update)
	return err
}
