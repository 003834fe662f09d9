package utils

import "time"

// Application constants
const (
	AppName    = "GoRent"
	AppVersion = "1.0.0"

	DefaultCurrency = "USD"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 8

	// Booking
	BookingLockTTL = 10 * time.Second

	// File upload
	MaxImageSize      = 5 * 1024 * 1024 // 5MB
	ImageMaxDimension = 1600

	// Rate limiting
	DefaultRateLimit = 100
	AuthRateLimit    = 10
)

// Response statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized"
	ErrForbidden        = "Forbidden"
)
