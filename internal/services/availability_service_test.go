package services

import (
	"context"
	"testing"
	"time"

	"gorent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func austinVehicle(available bool) *models.Vehicle {
	return &models.Vehicle{
		ID:          primitive.NewObjectID(),
		OwnerID:     primitive.NewObjectID(),
		Brand:       "Honda",
		Model:       "Civic",
		PricePerDay: 80,
		Location:    "Austin",
		IsAvailable: available,
		Status:      models.VehicleStatusActive,
	}
}

func TestFindAvailable(t *testing.T) {
	free := austinVehicle(true)
	booked := austinVehicle(true)
	elsewhere := austinVehicle(true)
	elsewhere.Location = "Dallas"

	pickup := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	ret := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)

	bookingRepo := newFakeBookingRepo(&models.Booking{
		VehicleID:  booked.ID,
		UserID:     primitive.NewObjectID(),
		OwnerID:    booked.OwnerID,
		PickupDate: pickup,
		ReturnDate: ret,
		Status:     models.BookingStatusConfirmed,
	})
	service := NewAvailabilityService(newFakeVehicleRepo(free, booked, elsewhere), bookingRepo, testLogger())

	vehicles, err := service.FindAvailable(context.Background(), "Austin", pickup, ret)
	require.NoError(t, err)

	require.Len(t, vehicles, 1)
	assert.Equal(t, free.ID, vehicles[0].ID)
}

func TestFindAvailableCaseInsensitiveLocation(t *testing.T) {
	vehicle := austinVehicle(true)
	service := NewAvailabilityService(newFakeVehicleRepo(vehicle), newFakeBookingRepo(), testLogger())

	pickup := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	vehicles, err := service.FindAvailable(context.Background(), "austin", pickup, pickup.AddDate(0, 0, 2))
	require.NoError(t, err)

	assert.Len(t, vehicles, 1)
}

func TestFindAvailableBoundaryDayExcluded(t *testing.T) {
	vehicle := austinVehicle(true)

	// Existing booking returns the day the new request wants to pick up.
	existingPickup := time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)
	existingReturn := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	bookingRepo := newFakeBookingRepo(&models.Booking{
		VehicleID:  vehicle.ID,
		UserID:     primitive.NewObjectID(),
		OwnerID:    vehicle.OwnerID,
		PickupDate: existingPickup,
		ReturnDate: existingReturn,
		Status:     models.BookingStatusPending,
	})
	service := NewAvailabilityService(newFakeVehicleRepo(vehicle), bookingRepo, testLogger())

	vehicles, err := service.FindAvailable(context.Background(), "Austin", existingReturn, existingReturn.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Empty(t, vehicles)

	// The day after the existing return is free.
	dayAfter := existingReturn.AddDate(0, 0, 1)
	vehicles, err = service.FindAvailable(context.Background(), "Austin", dayAfter, dayAfter.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)
}

func TestFindAvailableSkipsUnavailableFlag(t *testing.T) {
	vehicle := austinVehicle(false)
	service := NewAvailabilityService(newFakeVehicleRepo(vehicle), newFakeBookingRepo(), testLogger())

	pickup := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	vehicles, err := service.FindAvailable(context.Background(), "Austin", pickup, pickup.AddDate(0, 0, 2))
	require.NoError(t, err)

	assert.Empty(t, vehicles)
}

func TestFindAvailableValidation(t *testing.T) {
	service := NewAvailabilityService(newFakeVehicleRepo(), newFakeBookingRepo(), testLogger())
	pickup := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := service.FindAvailable(context.Background(), "  ", pickup, pickup.AddDate(0, 0, 2))
	assert.True(t, IsValidationError(err))

	_, err = service.FindAvailable(context.Background(), "Austin", pickup.AddDate(0, 0, 2), pickup)
	assert.True(t, IsValidationError(err))

	_, err = service.FindAvailable(context.Background(), "Austin", pickup, pickup)
	assert.True(t, IsValidationError(err))
}

func TestFindAvailableNoCandidates(t *testing.T) {
	service := NewAvailabilityService(newFakeVehicleRepo(), newFakeBookingRepo(), testLogger())
	pickup := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	vehicles, err := service.FindAvailable(context.Background(), "Austin", pickup, pickup.AddDate(0, 0, 2))
	require.NoError(t, err)

	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)
}

func TestCheckSingleAvailability(t *testing.T) {
	vehicle := austinVehicle(true)
	pickup := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	ret := pickup.AddDate(0, 0, 2)

	bookingRepo := newFakeBookingRepo(&models.Booking{
		VehicleID:  vehicle.ID,
		UserID:     primitive.NewObjectID(),
		OwnerID:    vehicle.OwnerID,
		PickupDate: pickup,
		ReturnDate: ret,
		Status:     models.BookingStatusPending,
	})
	service := NewAvailabilityService(newFakeVehicleRepo(vehicle), bookingRepo, testLogger())

	available, err := service.CheckSingleAvailability(context.Background(), vehicle.ID, pickup, ret)
	require.NoError(t, err)
	assert.False(t, available)

	later := ret.AddDate(0, 0, 1)
	available, err = service.CheckSingleAvailability(context.Background(), vehicle.ID, later, later.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.True(t, available)
}
