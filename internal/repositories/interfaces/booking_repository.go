package interfaces

import (
	"context"
	"time"

	"gorent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Booking, error)

	// FindConflicting returns active (pending/confirmed) bookings for one
	// vehicle whose ranges overlap [pickup, ret], both ends inclusive.
	FindConflicting(ctx context.Context, vehicleID primitive.ObjectID, pickup, ret time.Time) ([]*models.Booking, error)

	// FindConflictingForVehicles is the batched form used by availability
	// search: one round trip for all candidate vehicles.
	FindConflictingForVehicles(ctx context.Context, vehicleIDs []primitive.ObjectID, pickup, ret time.Time) ([]*models.Booking, error)

	CountByOwnerAndStatus(ctx context.Context, ownerID primitive.ObjectID, status models.BookingStatus) (int64, error)
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
	RevenueByOwner(ctx context.Context, ownerID primitive.ObjectID, since time.Time) (float64, error)
}
