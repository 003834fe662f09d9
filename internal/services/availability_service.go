package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AvailabilityService interface {
	// FindAvailable returns the vehicles at a location with no active
	// booking overlapping [pickup, ret].
	FindAvailable(ctx context.Context, location string, pickup, ret time.Time) ([]*models.Vehicle, error)

	// CheckSingleAvailability is the single-vehicle variant. Booking
	// creation re-runs it as the authoritative conflict guard, so it must
	// share the conflict predicate with FindAvailable.
	CheckSingleAvailability(ctx context.Context, vehicleID primitive.ObjectID, pickup, ret time.Time) (bool, error)
}

type availabilityService struct {
	vehicleRepo interfaces.VehicleRepository
	bookingRepo interfaces.BookingRepository
	log         *logger.Logger
}

func NewAvailabilityService(
	vehicleRepo interfaces.VehicleRepository,
	bookingRepo interfaces.BookingRepository,
	log *logger.Logger,
) AvailabilityService {
	return &availabilityService{
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		log:         log,
	}
}

func (s *availabilityService) FindAvailable(ctx context.Context, location string, pickup, ret time.Time) ([]*models.Vehicle, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, NewValidationError("location is required")
	}
	if !pickup.Before(ret) {
		return nil, NewValidationError("pickup date must be before return date")
	}

	candidates, err := s.vehicleRepo.FindCandidatesByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate vehicles: %w", err)
	}
	if len(candidates) == 0 {
		return []*models.Vehicle{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(candidates))
	for _, v := range candidates {
		ids = append(ids, v.ID)
	}

	// One round trip for every candidate's conflicts instead of a query
	// per vehicle.
	conflicts, err := s.bookingRepo.FindConflictingForVehicles(ctx, ids, pickup, ret)
	if err != nil {
		return nil, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	blocked := make(map[primitive.ObjectID]bool, len(conflicts))
	for _, b := range conflicts {
		blocked[b.VehicleID] = true
	}

	available := make([]*models.Vehicle, 0, len(candidates))
	for _, v := range candidates {
		if !blocked[v.ID] {
			available = append(available, v)
		}
	}

	return available, nil
}

func (s *availabilityService) CheckSingleAvailability(ctx context.Context, vehicleID primitive.ObjectID, pickup, ret time.Time) (bool, error) {
	conflicts, err := s.bookingRepo.FindConflicting(ctx, vehicleID, pickup, ret)
	if err != nil {
		return false, fmt.Errorf("failed to check booking conflicts: %w", err)
	}
	return len(conflicts) == 0, nil
}
