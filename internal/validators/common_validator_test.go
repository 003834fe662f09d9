package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateCreateBookingRequest(t *testing.T) {
	valid := &CreateBookingRequest{
		VehicleID:  primitive.NewObjectID().Hex(),
		PickupDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
	}
	assert.Empty(t, ValidateStruct(valid))

	badID := &CreateBookingRequest{
		VehicleID:  "not-an-object-id",
		PickupDate: valid.PickupDate,
		ReturnDate: valid.ReturnDate,
	}
	errs := ValidateStruct(badID)
	require.Len(t, errs, 1)
	assert.Equal(t, "VehicleID", errs[0].Field)

	missingDates := &CreateBookingRequest{VehicleID: valid.VehicleID}
	assert.Len(t, ValidateStruct(missingDates), 2)
}

func TestValidateChangeStatusRequest(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "cancelled", "completed"} {
		assert.Empty(t, ValidateStruct(&ChangeStatusRequest{Status: status}), status)
	}

	errs := ValidateStruct(&ChangeStatusRequest{Status: "returned"})
	require.Len(t, errs, 1)
	assert.Equal(t, "booking_status", errs[0].Tag)
}

func TestValidateRegisterRequest(t *testing.T) {
	valid := &RegisterRequest{
		Name:     "Sam Carter",
		Email:    "sam@example.com",
		Password: "long-enough-password",
		Role:     "renter",
	}
	assert.Empty(t, ValidateStruct(valid))

	badRole := *valid
	badRole.Role = "admin"
	errs := ValidateStruct(&badRole)
	require.Len(t, errs, 1)
	assert.Equal(t, "user_role", errs[0].Tag)

	shortPassword := *valid
	shortPassword.Password = "short"
	assert.Len(t, ValidateStruct(&shortPassword), 1)
}

func TestParseDateParam(t *testing.T) {
	got, err := ParseDateParam("2026-06-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDateParam("2026-06-10T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())

	_, err = ParseDateParam("June 10th")
	assert.Error(t, err)
}
