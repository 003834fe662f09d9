package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleStatus string
type VehicleCategory string
type FuelType string
type Transmission string

const (
	VehicleStatusActive   VehicleStatus = "active"
	VehicleStatusDelisted VehicleStatus = "delisted"

	VehicleCategoryCar        VehicleCategory = "car"
	VehicleCategoryMotorcycle VehicleCategory = "motorcycle"

	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeElectric FuelType = "electric"
	FuelTypeHybrid   FuelType = "hybrid"

	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

type Vehicle struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID      primitive.ObjectID `json:"owner_id" bson:"owner_id" validate:"required"`
	Brand        string             `json:"brand" bson:"brand" validate:"required"`
	Model        string             `json:"model" bson:"model" validate:"required"`
	Year         int                `json:"year" bson:"year" validate:"required"`
	Category     VehicleCategory    `json:"category" bson:"category" validate:"required"`
	FuelType     FuelType           `json:"fuel_type" bson:"fuel_type" validate:"required"`
	Transmission Transmission       `json:"transmission" bson:"transmission" validate:"required"`
	SeatingCap   int                `json:"seating_capacity" bson:"seating_capacity"`
	PricePerDay  float64            `json:"price_per_day" bson:"price_per_day" validate:"required,gt=0"`
	Location     string             `json:"location" bson:"location" validate:"required"`
	Description  string             `json:"description" bson:"description"`
	Image        string             `json:"image" bson:"image"`
	// IsAvailable is deliberately a stored flag, not a value derived from
	// bookings: owners can toggle it independently, and confirmed bookings
	// flip it through the status-transition rules.
	IsAvailable bool          `json:"is_available" bson:"is_available"`
	Status      VehicleStatus `json:"status" bson:"status" default:"active"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
	DelistedAt  *time.Time    `json:"delisted_at,omitempty" bson:"delisted_at,omitempty"`
}

func (v *Vehicle) IsDelisted() bool {
	return v.Status == VehicleStatusDelisted
}

// Summary is the projection embedded in booking and favorite responses.
func (v *Vehicle) Summary() map[string]interface{} {
	return map[string]interface{}{
		"id":            v.ID,
		"brand":         v.Brand,
		"model":         v.Model,
		"year":          v.Year,
		"category":      v.Category,
		"price_per_day": v.PricePerDay,
		"location":      v.Location,
		"image":         v.Image,
		"is_available":  v.IsAvailable,
	}
}
