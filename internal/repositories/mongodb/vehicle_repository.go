package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type vehicleRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewVehicleRepository(db *mongo.Database, cache CacheService) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		cache:      cache,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.Status = models.VehicleStatusActive
	vehicle.Location = strings.TrimSpace(vehicle.Location)
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	r.cacheVehicle(ctx, vehicle)

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	if vehicle := r.getVehicleFromCache(ctx, id.Hex()); vehicle != nil {
		return vehicle, nil
	}

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vehicle not found")
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	r.cacheVehicle(ctx, &vehicle)

	return &vehicle, nil
}

func (r *vehicleRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles by ids: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeVehicles(ctx, cursor)
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	if location, exists := updates["location"]; exists {
		if s, ok := location.(string); ok {
			updates["location"] = strings.TrimSpace(s)
		}
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	r.invalidateVehicleCache(ctx, id.Hex())

	return nil
}

// GetByOwnerID returns the owner's whole fleet, delisted vehicles included,
// so historical listings stay visible to their owner.
func (r *vehicleRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles by owner: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeVehicles(ctx, cursor)
}

func (r *vehicleRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	filter := bson.M{"status": models.VehicleStatusActive}

	if params.Search != "" {
		searchFilter := params.GetSearchFilter([]string{"brand", "model", "location", "category"})
		if len(searchFilter) > 0 {
			filter = bson.M{"$and": []bson.M{filter, searchFilter}}
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles, err := decodeVehicles(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

// FindCandidatesByLocation matches the location case-insensitively but
// exactly (anchored regex), restricted to active listings whose owner has
// not toggled them off.
func (r *vehicleRepository) FindCandidatesByLocation(ctx context.Context, location string) ([]*models.Vehicle, error) {
	pattern := fmt.Sprintf("^%s$", regexp.QuoteMeta(strings.TrimSpace(location)))

	cursor, err := r.collection.Find(ctx, bson.M{
		"location":     bson.M{"$regex": pattern, "$options": "i"},
		"status":       models.VehicleStatusActive,
		"is_available": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles at location: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeVehicles(ctx, cursor)
}

func (r *vehicleRepository) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	return r.Update(ctx, id, map[string]interface{}{"is_available": available})
}

// Delist marks the vehicle as removed from the catalog. The owner reference
// stays so historical bookings keep resolving.
func (r *vehicleRepository) Delist(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now()
	return r.Update(ctx, id, map[string]interface{}{
		"status":       models.VehicleStatusDelisted,
		"is_available": false,
		"delisted_at":  now,
	})
}

func (r *vehicleRepository) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"owner_id": ownerID,
		"status":   models.VehicleStatusActive,
	})
}

func decodeVehicles(ctx context.Context, cursor *mongo.Cursor) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}
	return vehicles, nil
}

func (r *vehicleRepository) cacheVehicle(ctx context.Context, vehicle *models.Vehicle) {
	if r.cache != nil && vehicle.Status == models.VehicleStatusActive {
		r.cache.Set(ctx, "vehicle:"+vehicle.ID.Hex(), vehicle, 15*time.Minute)
	}
}

func (r *vehicleRepository) getVehicleFromCache(ctx context.Context, vehicleID string) *models.Vehicle {
	if r.cache == nil {
		return nil
	}

	var vehicle models.Vehicle
	if err := r.cache.Get(ctx, "vehicle:"+vehicleID, &vehicle); err != nil {
		return nil
	}
	return &vehicle
}

func (r *vehicleRepository) invalidateVehicleCache(ctx context.Context, vehicleID string) {
	if r.cache != nil {
		r.cache.Delete(ctx, "vehicle:"+vehicleID)
	}
}
