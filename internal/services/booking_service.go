package services

import (
	"context"
	"fmt"
	"time"

	"gorent/internal/config"
	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TxRunner runs fn with transactional semantics when the backing store
// supports them. The booking write and the vehicle flag write of a status
// transition go through this so a crash cannot separate them.
type TxRunner interface {
	RunTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker is the slice of the redis cache used for the per-vehicle booking
// lane. Best effort: a nil Locker or a redis failure degrades to the plain
// check-then-act path.
type Locker interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID primitive.ObjectID, req *validators.CreateBookingRequest) (*models.Booking, error)
	ChangeStatus(ctx context.Context, actingUserID, bookingID primitive.ObjectID, newStatus string) (*models.Booking, error)
	GetUserBookings(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error)
	GetOwnerBookings(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Booking, error)
}

type bookingService struct {
	bookingRepo  interfaces.BookingRepository
	vehicleRepo  interfaces.VehicleRepository
	availability AvailabilityService
	locker       Locker
	tx           TxRunner
	lockTTL      time.Duration
	log          *logger.Logger
}

func NewBookingService(
	bookingRepo interfaces.BookingRepository,
	vehicleRepo interfaces.VehicleRepository,
	availability AvailabilityService,
	locker Locker,
	tx TxRunner,
	cfg *config.Config,
	log *logger.Logger,
) BookingService {
	lockTTL := utils.BookingLockTTL
	if cfg != nil && cfg.Security.BookingLockTTL > 0 {
		lockTTL = cfg.Security.BookingLockTTL
	}

	return &bookingService{
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		availability: availability,
		locker:       locker,
		tx:           tx,
		lockTTL:      lockTTL,
		log:          log,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID primitive.ObjectID, req *validators.CreateBookingRequest) (*models.Booking, error) {
	if errs := validators.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs.Error())
	}

	vehicleID, err := primitive.ObjectIDFromHex(req.VehicleID)
	if err != nil {
		return nil, NewValidationError("invalid vehicle id")
	}

	if err := validateBookingDates(req.PickupDate, req.ReturnDate); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, ErrNotFound
	}
	if vehicle.IsDelisted() {
		return nil, ErrNotFound
	}

	// Single-writer lane per vehicle: the conflict check and the insert
	// happen under a short redis lock, so two racing requests for the same
	// vehicle serialize instead of both passing the check. Best effort —
	// if redis is down we fall back to the unguarded path.
	if s.locker != nil {
		lockKey := "booking_lock:" + vehicleID.Hex()
		acquired, lockErr := s.locker.SetNX(ctx, lockKey, userID.Hex(), s.lockTTL)
		if lockErr != nil {
			s.log.WithVehicleID(vehicleID).WithError(lockErr).Warn("Booking lock unavailable, proceeding without it")
		} else if !acquired {
			return nil, ErrNotAvailable
		} else {
			defer s.locker.Delete(ctx, lockKey)
		}
	}

	// Authoritative conflict guard. Search results may be stale by the
	// time the renter submits.
	available, err := s.availability.CheckSingleAvailability(ctx, vehicleID, req.PickupDate, req.ReturnDate)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrNotAvailable
	}

	days := models.RentalDays(req.PickupDate, req.ReturnDate)
	booking := &models.Booking{
		VehicleID:  vehicleID,
		UserID:     userID,
		OwnerID:    vehicle.OwnerID,
		PickupDate: req.PickupDate,
		ReturnDate: req.ReturnDate,
		Status:     models.BookingStatusPending,
		NoOfDays:   days,
		Price:      vehicle.PricePerDay * float64(days),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// A pending booking does not touch the vehicle flag; only a later
	// confirmation does.
	s.log.LogBookingEvent(booking.ID, "created", map[string]interface{}{
		"vehicle_id": vehicleID.Hex(),
		"days":       days,
		"price":      booking.Price,
	})

	return booking, nil
}

func (s *bookingService) ChangeStatus(ctx context.Context, actingUserID, bookingID primitive.ObjectID, newStatus string) (*models.Booking, error) {
	status := models.BookingStatus(newStatus)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrNotFound
	}

	// Only the vehicle owner manages the lifecycle, never the renter.
	if booking.OwnerID != actingUserID {
		return nil, ErrUnauthorized
	}

	// The vehicle must still exist before any write: a transition against
	// a deleted vehicle aborts with the booking unchanged.
	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil || vehicle.IsDelisted() {
		return nil, ErrNotFound
	}

	err = s.tx.RunTx(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
			return err
		}

		switch status {
		case models.BookingStatusConfirmed:
			return s.vehicleRepo.SetAvailability(ctx, booking.VehicleID, false)
		case models.BookingStatusCancelled, models.BookingStatusCompleted:
			return s.vehicleRepo.SetAvailability(ctx, booking.VehicleID, true)
		}
		// Back to pending leaves the flag untouched.
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to change booking status: %w", err)
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()

	s.log.LogBookingEvent(bookingID, "status_changed", map[string]interface{}{
		"status": status,
	})

	return booking, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) GetOwnerBookings(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Booking, error) {
	bookings, err := s.bookingRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner bookings: %w", err)
	}
	return bookings, nil
}

// validateBookingDates enforces ordering and the date-only floor: a pickup
// earlier than today's date is rejected, today itself is fine.
func validateBookingDates(pickup, ret time.Time) error {
	if pickup.IsZero() || ret.IsZero() {
		return NewValidationError("pickup and return dates are required")
	}
	if !pickup.Before(ret) {
		return NewValidationError("pickup date must be before return date")
	}
	if utils.StartOfDay(pickup.UTC()).Before(utils.Today()) {
		return NewValidationError("pickup date cannot be in the past")
	}
	return nil
}
