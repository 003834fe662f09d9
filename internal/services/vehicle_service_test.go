package services

import (
	"context"
	"testing"

	"gorent/internal/models"
	"gorent/internal/validators"
	"gorent/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStorage struct {
	uploads []string
}

func (s *fakeStorage) Upload(ctx context.Context, req *storage.UploadRequest) (*storage.UploadResponse, error) {
	s.uploads = append(s.uploads, req.Key)
	return &storage.UploadResponse{Key: req.Key, URL: "https://cdn.example.com/" + req.Key}, nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error { return nil }

func (s *fakeStorage) URL(key string) string { return "https://cdn.example.com/" + key }

func newVehicleFixture(vehicles ...*models.Vehicle) (VehicleService, *fakeVehicleRepo) {
	repo := newFakeVehicleRepo(vehicles...)
	return NewVehicleService(repo, &fakeStorage{}, testLogger()), repo
}

func TestCreateVehicle(t *testing.T) {
	service, _ := newVehicleFixture()
	ownerID := primitive.NewObjectID()

	vehicle, err := service.CreateVehicle(context.Background(), ownerID, &validators.VehicleCreateRequest{
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2022,
		Category:     "car",
		FuelType:     "petrol",
		Transmission: "automatic",
		PricePerDay:  95,
		Location:     "Austin",
	})
	require.NoError(t, err)

	assert.Equal(t, ownerID, vehicle.OwnerID)
	assert.True(t, vehicle.IsAvailable)
	assert.False(t, vehicle.ID.IsZero())
}

func TestCreateVehicleValidation(t *testing.T) {
	service, _ := newVehicleFixture()

	_, err := service.CreateVehicle(context.Background(), primitive.NewObjectID(), &validators.VehicleCreateRequest{
		Brand:       "Toyota",
		PricePerDay: -5,
	})
	assert.True(t, IsValidationError(err))
}

func TestGetVehicleHidesDelisted(t *testing.T) {
	vehicle := austinVehicle(true)
	vehicle.Status = models.VehicleStatusDelisted
	service, _ := newVehicleFixture(vehicle)

	_, err := service.GetVehicle(context.Background(), vehicle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleAvailability(t *testing.T) {
	vehicle := austinVehicle(true)
	service, _ := newVehicleFixture(vehicle)

	updated, err := service.ToggleAvailability(context.Background(), vehicle.OwnerID, vehicle.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)

	updated, err = service.ToggleAvailability(context.Background(), vehicle.OwnerID, vehicle.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable)
}

func TestToggleAvailabilityWrongOwner(t *testing.T) {
	vehicle := austinVehicle(true)
	service, _ := newVehicleFixture(vehicle)

	_, err := service.ToggleAvailability(context.Background(), primitive.NewObjectID(), vehicle.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, vehicle.IsAvailable)
}

func TestDelistVehicle(t *testing.T) {
	vehicle := austinVehicle(true)
	service, _ := newVehicleFixture(vehicle)

	require.NoError(t, service.DelistVehicle(context.Background(), vehicle.OwnerID, vehicle.ID))

	assert.Equal(t, models.VehicleStatusDelisted, vehicle.Status)
	assert.False(t, vehicle.IsAvailable)
	assert.NotNil(t, vehicle.DelistedAt)

	// Delisting twice reports not found, the listing is already gone.
	err := service.DelistVehicle(context.Background(), vehicle.OwnerID, vehicle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOwnerVehiclesIncludesDelisted(t *testing.T) {
	active := austinVehicle(true)
	retired := austinVehicle(true)
	retired.OwnerID = active.OwnerID
	retired.Status = models.VehicleStatusDelisted
	service, _ := newVehicleFixture(active, retired)

	vehicles, err := service.GetOwnerVehicles(context.Background(), active.OwnerID)
	require.NoError(t, err)

	assert.Len(t, vehicles, 2)
}

func TestDelistVehicleWrongOwner(t *testing.T) {
	vehicle := austinVehicle(true)
	service, _ := newVehicleFixture(vehicle)

	err := service.DelistVehicle(context.Background(), primitive.NewObjectID(), vehicle.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, models.VehicleStatusActive, vehicle.Status)
}
