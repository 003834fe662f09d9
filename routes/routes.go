package routes

import (
	"net/http"

	"gorent/internal/config"
	"gorent/internal/handlers"
	"gorent/internal/middleware"
	"gorent/internal/utils"
	"gorent/pkg/cache"
	"gorent/pkg/database"
	"gorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything route setup needs.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Vehicle   *handlers.VehicleHandler
	Booking   *handlers.BookingHandler
	Favorite  *handlers.FavoriteHandler
	Dashboard *handlers.DashboardHandler
}

// Setup builds the gin engine with middleware and every route group mounted.
func Setup(cfg *config.Config, log *logger.Logger, db *database.MongoDB, rdb *cache.RedisCache, h *Handlers) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimit(rdb, cfg.Security.RateLimitPerMinute))

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": utils.AppName,
		})
	})

	api := router.Group("/api/v1")
	auth := middleware.AuthRequired(cfg.Security.JWTSecret)

	setupAuthRoutes(api, h.Auth, auth)
	setupVehicleRoutes(api, h.Vehicle, auth)
	setupBookingRoutes(api, h.Booking, auth)
	setupFavoriteRoutes(api, h.Favorite, auth)
	setupDashboardRoutes(api, h.Dashboard, auth)

	return router
}
