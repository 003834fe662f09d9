package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"
	"gorent/pkg/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleService interface {
	CreateVehicle(ctx context.Context, ownerID primitive.ObjectID, req *validators.VehicleCreateRequest) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, ownerID, vehicleID primitive.ObjectID, req *validators.VehicleUpdateRequest) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)
	GetOwnerVehicles(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error)
	ToggleAvailability(ctx context.Context, ownerID, vehicleID primitive.ObjectID) (*models.Vehicle, error)
	DelistVehicle(ctx context.Context, ownerID, vehicleID primitive.ObjectID) error
	UploadImage(ctx context.Context, ownerID, vehicleID primitive.ObjectID, filename string, file io.Reader) (string, error)
}

type vehicleService struct {
	vehicleRepo interfaces.VehicleRepository
	storage     storage.Provider
	log         *logger.Logger
}

func NewVehicleService(vehicleRepo interfaces.VehicleRepository, store storage.Provider, log *logger.Logger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		storage:     store,
		log:         log,
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, ownerID primitive.ObjectID, req *validators.VehicleCreateRequest) (*models.Vehicle, error) {
	if errs := validators.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs.Error())
	}

	vehicle := &models.Vehicle{
		OwnerID:      ownerID,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Category:     models.VehicleCategory(req.Category),
		FuelType:     models.FuelType(req.FuelType),
		Transmission: models.Transmission(req.Transmission),
		SeatingCap:   req.SeatingCapacity,
		PricePerDay:  req.PricePerDay,
		Location:     req.Location,
		Description:  req.Description,
		IsAvailable:  true,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.log.WithVehicleID(vehicle.ID).WithUserID(ownerID).Info("Vehicle listed")

	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, ownerID, vehicleID primitive.ObjectID, req *validators.VehicleUpdateRequest) (*models.Vehicle, error) {
	if errs := validators.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs.Error())
	}

	vehicle, err := s.ownedVehicle(ctx, ownerID, vehicleID)
	if err != nil {
		return nil, err
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return vehicle, nil
	}

	if err := s.vehicleRepo.Update(ctx, vehicleID, updates); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return s.vehicleRepo.GetByID(ctx, vehicleID)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil || vehicle.IsDelisted() {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	vehicles, total, err := s.vehicleRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, total, nil
}

func (s *vehicleService) GetOwnerVehicles(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner vehicles: %w", err)
	}
	return vehicles, nil
}

// ToggleAvailability flips the owner-controlled flag. This is independent of
// booking state, so a manual toggle can disagree with active bookings.
func (s *vehicleService) ToggleAvailability(ctx context.Context, ownerID, vehicleID primitive.ObjectID) (*models.Vehicle, error) {
	vehicle, err := s.ownedVehicle(ctx, ownerID, vehicleID)
	if err != nil {
		return nil, err
	}

	newAvailability := !vehicle.IsAvailable
	if err := s.vehicleRepo.SetAvailability(ctx, vehicleID, newAvailability); err != nil {
		return nil, fmt.Errorf("failed to toggle availability: %w", err)
	}

	vehicle.IsAvailable = newAvailability
	return vehicle, nil
}

func (s *vehicleService) DelistVehicle(ctx context.Context, ownerID, vehicleID primitive.ObjectID) error {
	if _, err := s.ownedVehicle(ctx, ownerID, vehicleID); err != nil {
		return err
	}

	if err := s.vehicleRepo.Delist(ctx, vehicleID); err != nil {
		return fmt.Errorf("failed to delist vehicle: %w", err)
	}

	s.log.WithVehicleID(vehicleID).Info("Vehicle delisted")

	return nil
}

// UploadImage resizes the photo, pushes it to the object store and persists
// the resulting URL on the vehicle record.
func (s *vehicleService) UploadImage(ctx context.Context, ownerID, vehicleID primitive.ObjectID, filename string, file io.Reader) (string, error) {
	if _, err := s.ownedVehicle(ctx, ownerID, vehicleID); err != nil {
		return "", err
	}

	if !utils.IsImageFile(filename) {
		return "", NewValidationError("image must be a jpeg or png file")
	}

	data, contentType, err := utils.ResizeImage(file, filename, utils.ImageMaxDimension)
	if err != nil {
		return "", NewValidationError("could not process image: " + err.Error())
	}

	key := fmt.Sprintf("vehicles/%s/%s%s", vehicleID.Hex(), uuid.NewString(), filepath.Ext(filename))
	resp, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if err := s.vehicleRepo.Update(ctx, vehicleID, map[string]interface{}{"image": resp.URL}); err != nil {
		return "", fmt.Errorf("failed to save image url: %w", err)
	}

	return resp.URL, nil
}

func (s *vehicleService) ownedVehicle(ctx context.Context, ownerID, vehicleID primitive.ObjectID) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil || vehicle.IsDelisted() {
		return nil, ErrNotFound
	}
	if vehicle.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	return vehicle, nil
}
