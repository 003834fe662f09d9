package interfaces

import (
	"context"

	"gorent/internal/models"
	"gorent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)

	// FindCandidatesByLocation returns active, available-flagged vehicles at
	// a location (case-insensitive exact match). Booking conflicts are
	// filtered out by the caller.
	FindCandidatesByLocation(ctx context.Context, location string) ([]*models.Vehicle, error)

	SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error
	Delist(ctx context.Context, id primitive.ObjectID) error
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
}
