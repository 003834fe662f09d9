package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                 string
		pickupA, returnA     time.Time
		pickupB, returnB     time.Time
		want                 bool
	}{
		{
			name:    "identical ranges",
			pickupA: date(2026, 6, 10), returnA: date(2026, 6, 12),
			pickupB: date(2026, 6, 10), returnB: date(2026, 6, 12),
			want: true,
		},
		{
			name:    "contained range",
			pickupA: date(2026, 6, 1), returnA: date(2026, 6, 30),
			pickupB: date(2026, 6, 10), returnB: date(2026, 6, 12),
			want: true,
		},
		{
			name:    "partial overlap",
			pickupA: date(2026, 6, 10), returnA: date(2026, 6, 15),
			pickupB: date(2026, 6, 14), returnB: date(2026, 6, 20),
			want: true,
		},
		{
			name:    "shared boundary day conflicts",
			pickupA: date(2026, 6, 10), returnA: date(2026, 6, 12),
			pickupB: date(2026, 6, 12), returnB: date(2026, 6, 15),
			want: true,
		},
		{
			name:    "strictly before",
			pickupA: date(2026, 6, 1), returnA: date(2026, 6, 5),
			pickupB: date(2026, 6, 6), returnB: date(2026, 6, 10),
			want: false,
		},
		{
			name:    "strictly after",
			pickupA: date(2026, 6, 20), returnA: date(2026, 6, 25),
			pickupB: date(2026, 6, 6), returnB: date(2026, 6, 10),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(tt.pickupA, tt.returnA, tt.pickupB, tt.returnB)
			assert.Equal(t, tt.want, got)

			// The predicate is symmetric.
			swapped := RangesOverlap(tt.pickupB, tt.returnB, tt.pickupA, tt.returnA)
			assert.Equal(t, tt.want, swapped)
		})
	}
}

func TestBookingOverlaps(t *testing.T) {
	booking := &Booking{
		PickupDate: date(2026, 6, 10),
		ReturnDate: date(2026, 6, 12),
	}

	assert.True(t, booking.Overlaps(date(2026, 6, 12), date(2026, 6, 14)))
	assert.False(t, booking.Overlaps(date(2026, 6, 13), date(2026, 6, 14)))
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name   string
		pickup time.Time
		ret    time.Time
		want   int
	}{
		{"two whole days", date(2026, 6, 10), date(2026, 6, 12), 2},
		{"one whole day", date(2026, 6, 10), date(2026, 6, 11), 1},
		{"partial day rounds up", date(2026, 6, 10), date(2026, 6, 10).Add(25 * time.Hour), 2},
		{"under one day bills one", date(2026, 6, 10), date(2026, 6, 10).Add(6 * time.Hour), 1},
		{"zero span", date(2026, 6, 10), date(2026, 6, 10), 0},
		{"inverted span", date(2026, 6, 12), date(2026, 6, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentalDays(tt.pickup, tt.ret))
		})
	}
}

func TestBookingStatusActive(t *testing.T) {
	assert.True(t, BookingStatusPending.Active())
	assert.True(t, BookingStatusConfirmed.Active())
	assert.False(t, BookingStatusCancelled.Active())
	assert.False(t, BookingStatusCompleted.Active())
}

func TestBookingSummaryHidesParties(t *testing.T) {
	booking := &Booking{
		UserID:  [12]byte{1},
		OwnerID: [12]byte{2},
		Price:   240,
	}

	summary := booking.Summary()
	assert.NotContains(t, summary, "user_id")
	assert.NotContains(t, summary, "owner_id")
	assert.Equal(t, 240.0, summary["price"])
}
