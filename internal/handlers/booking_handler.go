package handlers

import (
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService      services.BookingService
	availabilityService services.AvailabilityService
}

func NewBookingHandler(
	bookingService services.BookingService,
	availabilityService services.AvailabilityService,
) *BookingHandler {
	return &BookingHandler{
		bookingService:      bookingService,
		availabilityService: availabilityService,
	}
}

// Search returns the vehicles free at a location for a date range. Public,
// results are advisory until a booking is created.
// GET /api/v1/bookings/availability
func (h *BookingHandler) Search(c *gin.Context) {
	location := c.Query("location")

	pickup, err := validators.ParseDateParam(c.Query("pickup_date"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid pickup_date")
		return
	}
	ret, err := validators.ParseDateParam(c.Query("return_date"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid return_date")
		return
	}

	vehicles, err := h.availabilityService.FindAvailable(c.Request.Context(), location, pickup, ret)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponseWithMeta(c, "Available vehicles retrieved", vehicleSummaries(vehicles), &utils.Meta{
		Count: len(vehicles),
	})
}

// Create books a vehicle for the authenticated renter.
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "Vehicle")
		return
	}

	utils.CreatedResponse(c, "Booking created", booking.Summary())
}

// ChangeStatus moves a booking to a new lifecycle status. Owner only.
// PUT /api/v1/bookings/:id/status
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	booking, err := h.bookingService.ChangeStatus(c.Request.Context(), userID, bookingID, req.Status)
	if err != nil {
		handleServiceError(c, err, "Booking")
		return
	}

	utils.SuccessResponse(c, "Booking status updated", booking.Summary())
}

// MyBookings lists the authenticated renter's bookings, newest first.
// GET /api/v1/bookings
func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookings, err := h.bookingService.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "Booking")
		return
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved", bookingSummaries(bookings), &utils.Meta{
		Count: len(bookings),
	})
}

// OwnerBookings lists bookings against the authenticated owner's vehicles.
// GET /api/v1/owner/bookings
func (h *BookingHandler) OwnerBookings(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	bookings, err := h.bookingService.GetOwnerBookings(c.Request.Context(), ownerID)
	if err != nil {
		handleServiceError(c, err, "Booking")
		return
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved", bookingSummaries(bookings), &utils.Meta{
		Count: len(bookings),
	})
}
