package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorent/internal/models"
	"gorent/internal/validators"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubBookingService struct {
	booking *models.Booking
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID primitive.ObjectID, req *validators.CreateBookingRequest) (*models.Booking, error) {
	return s.booking, nil
}

func (s *stubBookingService) ChangeStatus(ctx context.Context, actingUserID, bookingID primitive.ObjectID, newStatus string) (*models.Booking, error) {
	return s.booking, nil
}

func (s *stubBookingService) GetUserBookings(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	return []*models.Booking{s.booking}, nil
}

func (s *stubBookingService) GetOwnerBookings(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Booking, error) {
	return []*models.Booking{s.booking}, nil
}

func stubBooking() *models.Booking {
	return &models.Booking{
		ID:         primitive.NewObjectID(),
		VehicleID:  primitive.NewObjectID(),
		UserID:     primitive.NewObjectID(),
		OwnerID:    primitive.NewObjectID(),
		PickupDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
		Status:     models.BookingStatusPending,
		NoOfDays:   2,
		Price:      200,
	}
}

func authedContext(t *testing.T, method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", primitive.NewObjectID())

	return c, w
}

func responseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)
	return envelope.Data
}

func TestCreateBookingResponseProjection(t *testing.T) {
	booking := stubBooking()
	handler := NewBookingHandler(&stubBookingService{booking: booking}, nil)

	c, w := authedContext(t, http.MethodPost, "/api/v1/bookings", gin.H{
		"vehicle_id":  booking.VehicleID.Hex(),
		"pickup_date": booking.PickupDate,
		"return_date": booking.ReturnDate,
	})
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)

	data := responseData(t, w)
	assert.NotContains(t, data, "user_id")
	assert.NotContains(t, data, "owner_id")
	assert.Contains(t, data, "vehicle_id")
	assert.Equal(t, float64(2), data["no_of_days"])
	assert.Equal(t, 200.0, data["price"])
	assert.Equal(t, "pending", data["status"])
}

func TestChangeStatusResponseProjection(t *testing.T) {
	booking := stubBooking()
	booking.Status = models.BookingStatusConfirmed
	handler := NewBookingHandler(&stubBookingService{booking: booking}, nil)

	c, w := authedContext(t, http.MethodPut, "/api/v1/bookings/"+booking.ID.Hex()+"/status", gin.H{
		"status": "confirmed",
	})
	c.Params = gin.Params{{Key: "id", Value: booking.ID.Hex()}}
	handler.ChangeStatus(c)

	require.Equal(t, http.StatusOK, w.Code)

	data := responseData(t, w)
	assert.NotContains(t, data, "user_id")
	assert.NotContains(t, data, "owner_id")
	assert.Equal(t, "confirmed", data["status"])
}
