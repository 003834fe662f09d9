package routes

import (
	"gorent/internal/handlers"

	"github.com/gin-gonic/gin"
)

func setupFavoriteRoutes(api *gin.RouterGroup, h *handlers.FavoriteHandler, auth gin.HandlerFunc) {
	group := api.Group("/favorites", auth)
	{
		group.GET("", h.List)
		group.POST("/:vehicleId", h.Add)
		group.DELETE("/:vehicleId", h.Remove)
	}
}
