package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
)

// VehicleStore defines the persistence operations for catalog entries.
type VehicleStore interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	FindVehicleByBrandModel(ctx context.Context, brand, model string) (*models.Vehicle, error)
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

// ListVehicles returns every catalog entry.
func (r *Repository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	cursor, err := r.db.Collection(vehiclesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	return vehicles, nil
}

// FindVehicleByBrandModel fetches the catalog entry for a brand/model pair.
func (r *Repository) FindVehicleByBrandModel(ctx context.Context, brand, model string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Collection(vehiclesCollection).
		FindOne(ctx, bson.M{"brand": brand, "model": model}).
		Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find vehicle %s %s: %w", brand, model, err)
	}
	return &vehicle, nil
}

// InsertVehicle stores a new catalog entry and returns it with its assigned ID.
func (r *Repository) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	result, err := r.db.Collection(vehiclesCollection).InsertOne(ctx, vehicle)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("insert vehicle: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		vehicle.ID = id
	}
	return vehicle, nil
}

// DeleteVehicle removes a catalog entry by ID.
func (r *Repository) DeleteVehicle(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid vehicle id %q: %w", id, ErrNotFound)
	}

	result, err := r.db.Collection(vehiclesCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
