package routes

import (
	"gorent/internal/handlers"

	"github.com/gin-gonic/gin"
)

func setupAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler, auth gin.HandlerFunc) {
	group := api.Group("/auth")
	{
		group.POST("/register", h.Register)
		group.POST("/login", h.Login)
		group.GET("/me", auth, h.Profile)
	}
}
