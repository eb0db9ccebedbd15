package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
)

// PermissionStore defines the read operations for module permissions.
type PermissionStore interface {
	ListPermissions(ctx context.Context) ([]models.Permission, error)
}

// ListPermissions returns every permission row.
func (r *Repository) ListPermissions(ctx context.Context) ([]models.Permission, error) {
	cursor, err := r.db.Collection(permissionsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find permissions: %w", err)
	}
	defer cursor.Close(ctx)

	permissions := []models.Permission{}
	if err := cursor.All(ctx, &permissions); err != nil {
		return nil, fmt.Errorf("decode permissions: %w", err)
	}
	return permissions, nil
}
