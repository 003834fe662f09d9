package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Active reports whether a booking in this status occupies its date range.
// Cancelled and completed bookings never conflict with new requests.
func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type Booking struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VehicleID  primitive.ObjectID `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	UserID     primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	OwnerID    primitive.ObjectID `json:"owner_id" bson:"owner_id" validate:"required"`
	PickupDate time.Time          `json:"pickup_date" bson:"pickup_date" validate:"required"`
	ReturnDate time.Time          `json:"return_date" bson:"return_date" validate:"required"`
	Status     BookingStatus      `json:"status" bson:"status" default:"pending"`
	NoOfDays   int                `json:"no_of_days" bson:"no_of_days"`
	Price      float64            `json:"price" bson:"price"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// RangesOverlap is the single interval-conflict predicate used everywhere a
// booking range is tested. Both ends are inclusive: two bookings sharing a
// calendar day conflict.
func RangesOverlap(pickupA, returnA, pickupB, returnB time.Time) bool {
	return !pickupA.After(returnB) && !returnA.Before(pickupB)
}

// Overlaps tests this booking's range against a requested range.
func (b *Booking) Overlaps(pickup, ret time.Time) bool {
	return RangesOverlap(b.PickupDate, b.ReturnDate, pickup, ret)
}

// RentalDays returns the billed day count: the span divided by 24h, rounded
// up. A 25-hour rental bills two days. Non-positive spans bill zero and are
// rejected upstream.
func RentalDays(pickup, ret time.Time) int {
	span := ret.Sub(pickup)
	if span <= 0 {
		return 0
	}
	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Summary is the sanitized projection returned to API callers. It never
// exposes the renter's or owner's profile.
func (b *Booking) Summary() map[string]interface{} {
	return map[string]interface{}{
		"id":          b.ID,
		"vehicle_id":  b.VehicleID,
		"pickup_date": b.PickupDate,
		"return_date": b.ReturnDate,
		"status":      b.Status,
		"no_of_days":  b.NoOfDays,
		"price":       b.Price,
		"created_at":  b.CreatedAt,
	}
}
