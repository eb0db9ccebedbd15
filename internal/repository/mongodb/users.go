package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/royalbikes/showroom-backend/internal/domain/models"
)

// UserStore defines the persistence operations for operator accounts.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user models.User) (models.User, error)
}

// FindUserByEmail fetches a user account by email.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.Collection(usersCollection).
		FindOne(ctx, bson.M{"email": email}).
		Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// InsertUser stores a new operator account and returns it with its ID.
func (r *Repository) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	result, err := r.db.Collection(usersCollection).InsertOne(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}
