package main

import (
	"context"
	"log"

	"brew_co/internal/config"
	"brew_co/internal/database"
	"brew_co/internal/handlers"
	"brew_co/internal/redis"
	"brew_co/internal/repository"
	"brew_co/internal/services"
	"brew_co/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Remote backend is optional; without it every entity is served from
	// the mock mirror.
	var db *gorm.DB
	if cfg.RemoteConfigured() {
		conn, err := database.Initialize(cfg.RemoteDriver, cfg.RemoteURL, cfg.RemoteKey)
		if err != nil {
			log.Printf("Warning: Failed to connect to remote backend, using mock data: %v", err)
		} else {
			db = conn
		}
	}

	// Persisted cart and mode
	var persister store.StatePersister
	redisClient, err := redis.Initialize(cfg.RedisURL, cfg.StateKey, cfg.StateTTL)
	if err != nil {
		log.Printf("Warning: Redis unavailable, cart will not survive restarts: %v", err)
	} else {
		defer redisClient.Close()
		persister = redisClient
	}

	// Initialize repositories and services
	repos := repository.New(db)
	svc := services.New(repos)

	appStore := store.New(svc, persister)
	appStore.Restore(context.Background())

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(appStore, svc.Menu, svc.Users)

	// Setup routes
	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "remote": repos.RemoteConfigured()})
	})
	apiHandler.RegisterRoutes(router)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
