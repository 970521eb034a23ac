package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/coderanik/Alumni-Connect/cmd/api/router"
	cacheAdapter "github.com/coderanik/Alumni-Connect/internal/infrastructure/cache/adapter"
	cacheport "github.com/coderanik/Alumni-Connect/internal/infrastructure/cache/port"
	"github.com/coderanik/Alumni-Connect/internal/infrastructure/database"
	queueAdapter "github.com/coderanik/Alumni-Connect/internal/infrastructure/queue/adapter"
	qport "github.com/coderanik/Alumni-Connect/internal/infrastructure/queue/port"
	"github.com/coderanik/Alumni-Connect/internal/infrastructure/realtime"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	// Connect to the database on startup
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis serves the directory cache; the server runs uncached without it.
	var cache cacheport.Cache
	if redisCache, err := cacheAdapter.NewRedisAdapter(); err != nil {
		log.Printf("Warning: redis unavailable, directory cache disabled: %v", err)
	} else {
		cache = redisCache
		defer redisCache.Close()
	}

	// Asynq schedules event reminders; creation still works without it.
	var queue qport.Client
	if asynqClient, err := queueAdapter.NewAsynqClientFromEnv(); err != nil {
		log.Printf("Warning: queue unavailable, event reminders disabled: %v", err)
	} else {
		queue = asynqClient
		defer asynqClient.Close()
	}

	registry := realtime.NewRegistry()
	defer registry.Close()

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	router.RegisterRoutes(r, router.Deps{
		Pool:     pool,
		Registry: registry,
		Cache:    cache,
		Queue:    queue,
		Secret:   secret,
	})

	// Start HTTP server (blocks until shutdown)
	if err := r.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
