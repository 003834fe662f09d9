package routes

import (
	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

func setupDashboardRoutes(api *gin.RouterGroup, h *handlers.DashboardHandler, auth gin.HandlerFunc) {
	api.GET("/owner/dashboard", auth, middleware.OwnerRequired(), h.Owner)
}
