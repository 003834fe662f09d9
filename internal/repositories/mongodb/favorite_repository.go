package mongodb

import (
	"context"
	"fmt"
	"time"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type favoriteRepository struct {
	collection *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) interfaces.FavoriteRepository {
	return &favoriteRepository{
		collection: db.Collection("favorites"),
	}
}

// Add upserts the user's favorites document and $addToSet keeps the
// operation idempotent: adding the same vehicle twice leaves one entry.
func (r *favoriteRepository) Add(ctx context.Context, userID, vehicleID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$addToSet": bson.M{"vehicle_ids": vehicleID},
			"$set":      bson.M{"updated_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// Remove is a no-op success when the vehicle was never favorited.
func (r *favoriteRepository) Remove(ctx context.Context, userID, vehicleID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$pull": bson.M{"vehicle_ids": vehicleID},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&favorite)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// No document yet means an empty set, not an error.
			return &models.Favorite{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	return &favorite, nil
}
