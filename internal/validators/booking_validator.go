package validators

import "time"

type CreateBookingRequest struct {
	VehicleID  string    `json:"vehicle_id" validate:"required,object_id"`
	PickupDate time.Time `json:"pickup_date" validate:"required"`
	ReturnDate time.Time `json:"return_date" validate:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
}
