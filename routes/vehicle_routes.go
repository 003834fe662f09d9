package routes

import (
	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

func setupVehicleRoutes(api *gin.RouterGroup, h *handlers.VehicleHandler, auth gin.HandlerFunc) {
	group := api.Group("/vehicles")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)

		owner := group.Group("", auth, middleware.OwnerRequired())
		{
			owner.POST("", h.Create)
			owner.PUT("/:id", h.Update)
			owner.POST("/:id/toggle", h.ToggleAvailability)
			owner.POST("/:id/image", h.UploadImage)
			owner.DELETE("/:id", h.Delist)
		}
	}

	api.GET("/owner/vehicles", auth, middleware.OwnerRequired(), h.OwnerVehicles)
}
