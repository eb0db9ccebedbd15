package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
)

// QuotationStore defines the persistence operations for quotations.
type QuotationStore interface {
	ListQuotations(ctx context.Context) ([]models.Quotation, error)
	FindQuotationByID(ctx context.Context, id string) (*models.Quotation, error)
	InsertQuotation(ctx context.Context, quotation models.Quotation) (models.Quotation, error)
	ReplaceQuotation(ctx context.Context, id string, quotation models.Quotation) error
	DeleteQuotation(ctx context.Context, id string) error
	CountQuotations(ctx context.Context) (int64, error)
}

// ListQuotations returns every stored quotation.
func (r *Repository) ListQuotations(ctx context.Context) ([]models.Quotation, error) {
	cursor, err := r.db.Collection(quotationsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find quotations: %w", err)
	}
	defer cursor.Close(ctx)

	quotations := []models.Quotation{}
	if err := cursor.All(ctx, &quotations); err != nil {
		return nil, fmt.Errorf("decode quotations: %w", err)
	}
	return quotations, nil
}

// FindQuotationByID fetches one quotation by its ID.
func (r *Repository) FindQuotationByID(ctx context.Context, id string) (*models.Quotation, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid quotation id %q: %w", id, ErrNotFound)
	}

	var quotation models.Quotation
	err = r.db.Collection(quotationsCollection).
		FindOne(ctx, bson.M{"_id": objectID}).
		Decode(&quotation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find quotation %s: %w", id, err)
	}
	return &quotation, nil
}

// InsertQuotation stores a new quotation and returns it with its assigned ID.
func (r *Repository) InsertQuotation(ctx context.Context, quotation models.Quotation) (models.Quotation, error) {
	result, err := r.db.Collection(quotationsCollection).InsertOne(ctx, quotation)
	if err != nil {
		return models.Quotation{}, fmt.Errorf("insert quotation: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		quotation.ID = id
	}
	return quotation, nil
}

// ReplaceQuotation overwrites the quotation with the given ID wholesale.
// Quotations are only ever mutated by full replacement.
func (r *Repository) ReplaceQuotation(ctx context.Context, id string, quotation models.Quotation) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid quotation id %q: %w", id, ErrNotFound)
	}

	quotation.ID = objectID
	result, err := r.db.Collection(quotationsCollection).ReplaceOne(ctx, bson.M{"_id": objectID}, quotation)
	if err != nil {
		return fmt.Errorf("replace quotation: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteQuotation removes a quotation by ID.
func (r *Repository) DeleteQuotation(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid quotation id %q: %w", id, ErrNotFound)
	}

	result, err := r.db.Collection(quotationsCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountQuotations returns the number of stored quotations.
func (r *Repository) CountQuotations(ctx context.Context) (int64, error) {
	count, err := r.db.Collection(quotationsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count quotations: %w", err)
	}
	return count, nil
}
