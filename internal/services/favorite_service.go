package services

import (
	"context"
	"fmt"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FavoriteService interface {
	Add(ctx context.Context, userID, vehicleID primitive.ObjectID) error
	Remove(ctx context.Context, userID, vehicleID primitive.ObjectID) error
	List(ctx context.Context, userID primitive.ObjectID) ([]*models.Vehicle, error)
}

type favoriteService struct {
	favoriteRepo interfaces.FavoriteRepository
	vehicleRepo  interfaces.VehicleRepository
	log          *logger.Logger
}

func NewFavoriteService(
	favoriteRepo interfaces.FavoriteRepository,
	vehicleRepo interfaces.VehicleRepository,
	log *logger.Logger,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		vehicleRepo:  vehicleRepo,
		log:          log,
	}
}

func (s *favoriteService) Add(ctx context.Context, userID, vehicleID primitive.ObjectID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil || vehicle.IsDelisted() {
		return ErrNotFound
	}

	if err := s.favoriteRepo.Add(ctx, userID, vehicleID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, vehicleID primitive.ObjectID) error {
	// Removing something never favorited is a success, not an error.
	if err := s.favoriteRepo.Remove(ctx, userID, vehicleID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

// List resolves the saved vehicle ids to summaries. Favorites whose vehicle
// has been delisted since are dropped silently.
func (s *favoriteService) List(ctx context.Context, userID primitive.ObjectID) ([]*models.Vehicle, error) {
	favorite, err := s.favoriteRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	if len(favorite.VehicleIDs) == 0 {
		return []*models.Vehicle{}, nil
	}

	vehicles, err := s.vehicleRepo.GetByIDs(ctx, favorite.VehicleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite vehicles: %w", err)
	}

	listed := make([]*models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !v.IsDelisted() {
			listed = append(listed, v)
		}
	}

	return listed, nil
}
