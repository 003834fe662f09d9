package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite holds one user's saved vehicles as a set. Adds and removes are
// idempotent ($addToSet / $pull), so no ordering is guaranteed.
type Favorite struct {
	ID         primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	UserID     primitive.ObjectID   `json:"user_id" bson:"user_id"`
	VehicleIDs []primitive.ObjectID `json:"vehicle_ids" bson:"vehicle_ids"`
	UpdatedAt  time.Time            `json:"updated_at" bson:"updated_at"`
}
