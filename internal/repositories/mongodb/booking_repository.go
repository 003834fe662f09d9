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

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) interfaces.BookingRepository {
	return &bookingRepository{
		collection: db.Collection("bookings"),
	}
}

// activeStatuses are the statuses that occupy a date range. Cancelled and
// completed bookings never block new requests.
var activeStatuses = []models.BookingStatus{
	models.BookingStatusPending,
	models.BookingStatusConfirmed,
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}

func (r *bookingRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	return r.findBookings(ctx, bson.M{"user_id": userID})
}

func (r *bookingRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Booking, error) {
	return r.findBookings(ctx, bson.M{"owner_id": ownerID})
}

// FindConflicting implements the inclusive interval overlap test as a single
// query: existing.pickup <= new.return AND existing.return >= new.pickup,
// restricted to statuses that occupy the range.
func (r *bookingRepository) FindConflicting(ctx context.Context, vehicleID primitive.ObjectID, pickup, ret time.Time) ([]*models.Booking, error) {
	return r.findBookings(ctx, bson.M{
		"vehicle_id":  vehicleID,
		"status":      bson.M{"$in": activeStatuses},
		"pickup_date": bson.M{"$lte": ret},
		"return_date": bson.M{"$gte": pickup},
	})
}

// FindConflictingForVehicles batches the conflict query across all candidate
// vehicles in one round trip.
func (r *bookingRepository) FindConflictingForVehicles(ctx context.Context, vehicleIDs []primitive.ObjectID, pickup, ret time.Time) ([]*models.Booking, error) {
	if len(vehicleIDs) == 0 {
		return nil, nil
	}

	return r.findBookings(ctx, bson.M{
		"vehicle_id":  bson.M{"$in": vehicleIDs},
		"status":      bson.M{"$in": activeStatuses},
		"pickup_date": bson.M{"$lte": ret},
		"return_date": bson.M{"$gte": pickup},
	})
}

func (r *bookingRepository) CountByOwnerAndStatus(ctx context.Context, ownerID primitive.ObjectID, status models.BookingStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"owner_id": ownerID, "status": status})
}

func (r *bookingRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"owner_id": ownerID})
}

// RevenueByOwner sums the price of completed bookings created since the
// given time.
func (r *bookingRepository) RevenueByOwner(ctx context.Context, ownerID primitive.ObjectID, since time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"owner_id":   ownerID,
			"status":     models.BookingStatusCompleted,
			"created_at": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode revenue: %w", err)
		}
	}

	return result.Total, nil
}

func (r *bookingRepository) findBookings(ctx context.Context, filter bson.M) ([]*models.Booking, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*models.Booking
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
