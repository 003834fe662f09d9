package interfaces

import (
	"context"

	"gorent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FavoriteRepository interface {
	// Add and Remove are idempotent set operations.
	Add(ctx context.Context, userID, vehicleID primitive.ObjectID) error
	Remove(ctx context.Context, userID, vehicleID primitive.ObjectID) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Favorite, error)
}
