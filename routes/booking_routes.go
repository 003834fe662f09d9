package routes

import (
	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

func setupBookingRoutes(api *gin.RouterGroup, h *handlers.BookingHandler, auth gin.HandlerFunc) {
	group := api.Group("/bookings")
	{
		group.GET("/availability", h.Search)

		group.POST("", auth, middleware.RenterRequired(), h.Create)
		group.GET("", auth, h.MyBookings)
		group.PUT("/:id/status", auth, middleware.OwnerRequired(), h.ChangeStatus)
	}

	api.GET("/owner/bookings", auth, middleware.OwnerRequired(), h.OwnerBookings)
}
