package services

import (
	"context"
	"fmt"
	"time"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerDashboard is the read-side snapshot shown on the owner's landing
// page. Derived entirely from existing records, nothing here mutates state.
type OwnerDashboard struct {
	TotalVehicles     int64             `json:"total_vehicles"`
	TotalBookings     int64             `json:"total_bookings"`
	PendingBookings   int64             `json:"pending_bookings"`
	ConfirmedBookings int64             `json:"confirmed_bookings"`
	MonthlyRevenue    float64           `json:"monthly_revenue"`
	RecentBookings    []*models.Booking `json:"recent_bookings"`
}

type DashboardService interface {
	GetOwnerDashboard(ctx context.Context, ownerID primitive.ObjectID) (*OwnerDashboard, error)
}

type dashboardService struct {
	vehicleRepo interfaces.VehicleRepository
	bookingRepo interfaces.BookingRepository
	log         *logger.Logger
}

func NewDashboardService(
	vehicleRepo interfaces.VehicleRepository,
	bookingRepo interfaces.BookingRepository,
	log *logger.Logger,
) DashboardService {
	return &dashboardService{
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		log:         log,
	}
}

func (s *dashboardService) GetOwnerDashboard(ctx context.Context, ownerID primitive.ObjectID) (*OwnerDashboard, error) {
	totalVehicles, err := s.vehicleRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}

	totalBookings, err := s.bookingRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	pending, err := s.bookingRepo.CountByOwnerAndStatus(ctx, ownerID, models.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	confirmed, err := s.bookingRepo.CountByOwnerAndStatus(ctx, ownerID, models.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmed bookings: %w", err)
	}

	monthAgo := time.Now().AddDate(0, -1, 0)
	revenue, err := s.bookingRepo.RevenueByOwner(ctx, ownerID, monthAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue: %w", err)
	}

	bookings, err := s.bookingRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent bookings: %w", err)
	}
	if len(bookings) > 5 {
		bookings = bookings[:5]
	}

	return &OwnerDashboard{
		TotalVehicles:     totalVehicles,
		TotalBookings:     totalBookings,
		PendingBookings:   pending,
		ConfirmedBookings: confirmed,
		MonthlyRevenue:    revenue,
		RecentBookings:    bookings,
	}, nil
}
