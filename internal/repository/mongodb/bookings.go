package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
)

// BookingStore defines the persistence operations for booked vehicles.
type BookingStore interface {
	ListBookings(ctx context.Context) ([]models.BookedVehicle, error)
	InsertBooking(ctx context.Context, booking models.BookedVehicle) (models.BookedVehicle, error)
	DeleteBooking(ctx context.Context, id string) error
	CountBookings(ctx context.Context) (int64, error)
}

// ListBookings returns every booked vehicle record.
func (r *Repository) ListBookings(ctx context.Context) ([]models.BookedVehicle, error) {
	cursor, err := r.db.Collection(bookingsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.BookedVehicle{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

// InsertBooking stores a booked vehicle and returns it with its assigned ID.
func (r *Repository) InsertBooking(ctx context.Context, booking models.BookedVehicle) (models.BookedVehicle, error) {
	// A promoted quotation keeps its bill number but gets a fresh identity.
	booking.ID = primitive.NilObjectID

	result, err := r.db.Collection(bookingsCollection).InsertOne(ctx, booking)
	if err != nil {
		return models.BookedVehicle{}, fmt.Errorf("insert booking: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = id
	}
	return booking, nil
}

// DeleteBooking removes a booked vehicle record by ID.
func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid booking id %q: %w", id, ErrNotFound)
	}

	result, err := r.db.Collection(bookingsCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountBookings returns the number of booked vehicle records.
func (r *Repository) CountBookings(ctx context.Context) (int64, error) {
	count, err := r.db.Collection(bookingsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}
