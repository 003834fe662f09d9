package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorent/internal/models"
	"gorent/internal/utils"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errFakeNotFound = errors.New("not found")

func testLogger() *logger.Logger {
	log, err := logger.New(&logger.Config{Level: "error", Format: "text"})
	if err != nil {
		panic(err)
	}
	return log
}

// fakeVehicleRepo is an in-memory VehicleRepository.
type fakeVehicleRepo struct {
	vehicles map[primitive.ObjectID]*models.Vehicle
}

func newFakeVehicleRepo(vehicles ...*models.Vehicle) *fakeVehicleRepo {
	repo := &fakeVehicleRepo{vehicles: make(map[primitive.ObjectID]*models.Vehicle)}
	for _, v := range vehicles {
		if v.ID.IsZero() {
			v.ID = primitive.NewObjectID()
		}
		repo.vehicles[v.ID] = v
	}
	return repo
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return v, nil
}

func (r *fakeVehicleRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Vehicle, error) {
	out := make([]*models.Vehicle, 0, len(ids))
	for _, id := range ids {
		if v, ok := r.vehicles[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if _, ok := r.vehicles[id]; !ok {
		return errFakeNotFound
	}
	return nil
}

func (r *fakeVehicleRepo) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range r.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	var out []*models.Vehicle
	for _, v := range r.vehicles {
		if !v.IsDelisted() {
			out = append(out, v)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeVehicleRepo) FindCandidatesByLocation(ctx context.Context, location string) ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range r.vehicles {
		if strings.EqualFold(v.Location, location) && !v.IsDelisted() && v.IsAvailable {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	v, ok := r.vehicles[id]
	if !ok {
		return errFakeNotFound
	}
	v.IsAvailable = available
	return nil
}

func (r *fakeVehicleRepo) Delist(ctx context.Context, id primitive.ObjectID) error {
	v, ok := r.vehicles[id]
	if !ok {
		return errFakeNotFound
	}
	now := time.Now()
	v.Status = models.VehicleStatusDelisted
	v.IsAvailable = false
	v.DelistedAt = &now
	return nil
}

func (r *fakeVehicleRepo) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	vehicles, _ := r.GetByOwnerID(ctx, ownerID)
	return int64(len(vehicles)), nil
}

// fakeBookingRepo is an in-memory BookingRepository sharing the production
// conflict predicate.
type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*models.Booking
	created  []*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[primitive.ObjectID]*models.Booking)}
	for _, b := range bookings {
		if b.ID.IsZero() {
			b.ID = primitive.NewObjectID()
		}
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	r.bookings[booking.ID] = booking
	r.created = append(r.created, booking)
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return errFakeNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindConflicting(ctx context.Context, vehicleID primitive.ObjectID, pickup, ret time.Time) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range r.bookings {
		if b.VehicleID == vehicleID && b.Status.Active() && b.Overlaps(pickup, ret) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindConflictingForVehicles(ctx context.Context, vehicleIDs []primitive.ObjectID, pickup, ret time.Time) ([]*models.Booking, error) {
	wanted := make(map[primitive.ObjectID]bool, len(vehicleIDs))
	for _, id := range vehicleIDs {
		wanted[id] = true
	}

	var out []*models.Booking
	for _, b := range r.bookings {
		if wanted[b.VehicleID] && b.Status.Active() && b.Overlaps(pickup, ret) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CountByOwnerAndStatus(ctx context.Context, ownerID primitive.ObjectID, status models.BookingStatus) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.OwnerID == ownerID && b.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	bookings, _ := r.GetByOwnerID(ctx, ownerID)
	return int64(len(bookings)), nil
}

func (r *fakeBookingRepo) RevenueByOwner(ctx context.Context, ownerID primitive.ObjectID, since time.Time) (float64, error) {
	var revenue float64
	for _, b := range r.bookings {
		if b.OwnerID == ownerID && b.Status == models.BookingStatusCompleted && !b.CreatedAt.Before(since) {
			revenue += b.Price
		}
	}
	return revenue, nil
}

// fakeFavoriteRepo is an in-memory FavoriteRepository with set semantics.
type fakeFavoriteRepo struct {
	favorites map[primitive.ObjectID][]primitive.ObjectID
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[primitive.ObjectID][]primitive.ObjectID)}
}

func (r *fakeFavoriteRepo) Add(ctx context.Context, userID, vehicleID primitive.ObjectID) error {
	for _, id := range r.favorites[userID] {
		if id == vehicleID {
			return nil
		}
	}
	r.favorites[userID] = append(r.favorites[userID], vehicleID)
	return nil
}

func (r *fakeFavoriteRepo) Remove(ctx context.Context, userID, vehicleID primitive.ObjectID) error {
	ids := r.favorites[userID]
	for i, id := range ids {
		if id == vehicleID {
			r.favorites[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeFavoriteRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Favorite, error) {
	return &models.Favorite{UserID: userID, VehicleIDs: r.favorites[userID]}, nil
}

// fakeLocker records lock traffic and can simulate contention or a redis
// outage.
type fakeLocker struct {
	acquired   bool
	err        error
	setNXCalls []string
	deleted    []string
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{acquired: true}
}

func (l *fakeLocker) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	l.setNXCalls = append(l.setNXCalls, key)
	return l.acquired, l.err
}

func (l *fakeLocker) Delete(ctx context.Context, keys ...string) error {
	l.deleted = append(l.deleted, keys...)
	return nil
}

// fakeTx runs the callback inline and counts invocations.
type fakeTx struct {
	runs int
}

func (t *fakeTx) RunTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.runs++
	return fn(ctx)
}
