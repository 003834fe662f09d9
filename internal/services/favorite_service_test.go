package services

import (
	"context"
	"testing"

	"gorent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newFavoriteFixture(vehicles ...*models.Vehicle) (FavoriteService, *fakeFavoriteRepo) {
	favoriteRepo := newFakeFavoriteRepo()
	return NewFavoriteService(favoriteRepo, newFakeVehicleRepo(vehicles...), testLogger()), favoriteRepo
}

func TestFavoriteAddAndList(t *testing.T) {
	vehicle := austinVehicle(true)
	service, _ := newFavoriteFixture(vehicle)
	userID := primitive.NewObjectID()

	require.NoError(t, service.Add(context.Background(), userID, vehicle.ID))

	vehicles, err := service.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, vehicle.ID, vehicles[0].ID)
}

func TestFavoriteAddIdempotent(t *testing.T) {
	vehicle := austinVehicle(true)
	service, _ := newFavoriteFixture(vehicle)
	userID := primitive.NewObjectID()

	require.NoError(t, service.Add(context.Background(), userID, vehicle.ID))
	require.NoError(t, service.Add(context.Background(), userID, vehicle.ID))

	vehicles, err := service.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)
}

func TestFavoriteAddUnknownVehicle(t *testing.T) {
	service, _ := newFavoriteFixture()

	err := service.Add(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteAddDelistedVehicle(t *testing.T) {
	vehicle := austinVehicle(true)
	vehicle.Status = models.VehicleStatusDelisted
	service, _ := newFavoriteFixture(vehicle)

	err := service.Add(context.Background(), primitive.NewObjectID(), vehicle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteRemoveNeverSaved(t *testing.T) {
	vehicle := austinVehicle(true)
	service, _ := newFavoriteFixture(vehicle)

	err := service.Remove(context.Background(), primitive.NewObjectID(), vehicle.ID)
	assert.NoError(t, err)
}

func TestFavoriteRemove(t *testing.T) {
	vehicle := austinVehicle(true)
	service, _ := newFavoriteFixture(vehicle)
	userID := primitive.NewObjectID()

	require.NoError(t, service.Add(context.Background(), userID, vehicle.ID))
	require.NoError(t, service.Remove(context.Background(), userID, vehicle.ID))

	vehicles, err := service.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}

func TestFavoriteListDropsDelisted(t *testing.T) {
	kept := austinVehicle(true)
	gone := austinVehicle(true)
	service, favoriteRepo := newFavoriteFixture(kept, gone)
	userID := primitive.NewObjectID()

	require.NoError(t, service.Add(context.Background(), userID, kept.ID))
	require.NoError(t, service.Add(context.Background(), userID, gone.ID))

	gone.Status = models.VehicleStatusDelisted

	vehicles, err := service.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, kept.ID, vehicles[0].ID)

	// The stale id stays stored, it is only filtered at read time.
	assert.Len(t, favoriteRepo.favorites[userID], 2)
}

func TestFavoriteListEmpty(t *testing.T) {
	service, _ := newFavoriteFixture()

	vehicles, err := service.List(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)
}
