package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorent/internal/config"
	"gorent/internal/handlers"
	"gorent/internal/repositories/mongodb"
	"gorent/internal/services"
	"gorent/pkg/cache"
	"gorent/pkg/database"
	"gorent/pkg/logger"
	"gorent/pkg/storage"
	"gorent/routes"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine, env vars may come from the environment itself.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Colors: config.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := database.Connect(&database.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.Fatalf("failed to run migrations: %v", err)
	}

	// Redis carries the vehicle cache, the booking lock lane and rate
	// limiting. The API still works without it, just with those degraded.
	redisCache, err := cache.NewRedisCache(&cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Redis unavailable, continuing without cache")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	store, err := buildStorage(cfg)
	if err != nil {
		appLogger.Fatalf("failed to initialize storage: %v", err)
	}

	// Repositories.
	userRepo := mongodb.NewUserRepository(db.Database)
	vehicleRepo := mongodb.NewVehicleRepository(db.Database, cacheOrNil(redisCache))
	bookingRepo := mongodb.NewBookingRepository(db.Database)
	favoriteRepo := mongodb.NewFavoriteRepository(db.Database)

	// Services.
	authService := services.NewAuthService(userRepo, cfg, appLogger)
	availabilityService := services.NewAvailabilityService(vehicleRepo, bookingRepo, appLogger)
	bookingService := services.NewBookingService(bookingRepo, vehicleRepo, availabilityService, lockerOrNil(redisCache), db, cfg, appLogger)
	vehicleService := services.NewVehicleService(vehicleRepo, store, appLogger)
	favoriteService := services.NewFavoriteService(favoriteRepo, vehicleRepo, appLogger)
	dashboardService := services.NewDashboardService(vehicleRepo, bookingRepo, appLogger)

	router := routes.Setup(cfg, appLogger, db, redisCache, &routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Vehicle:   handlers.NewVehicleHandler(vehicleService),
		Booking:   handlers.NewBookingHandler(bookingService, availabilityService),
		Favorite:  handlers.NewFavoriteHandler(favoriteService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithField("port", cfg.App.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatalf("forced shutdown: %v", err)
	}

	appLogger.Info("Server stopped")
}

func buildStorage(cfg *config.Config) (storage.Provider, error) {
	switch cfg.Storage.Provider {
	case "s3":
		return storage.NewS3Storage(cfg.Storage.S3Region, cfg.Storage.S3Bucket, cfg.Storage.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.LocalURL)
	}
}

// cacheOrNil keeps the repository's CacheService nil when redis is down;
// a typed nil interface would defeat the repo's nil checks.
func cacheOrNil(rdb *cache.RedisCache) mongodb.CacheService {
	if rdb == nil {
		return nil
	}
	return rdb
}

func lockerOrNil(rdb *cache.RedisCache) services.Locker {
	if rdb == nil {
		return nil
	}
	return rdb
}
