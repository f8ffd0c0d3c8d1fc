package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hollyberry/giftswap/internal/assign"
	"github.com/hollyberry/giftswap/internal/avatars"
	"github.com/hollyberry/giftswap/internal/common/clock"
	"github.com/hollyberry/giftswap/internal/common/uuid"
	"github.com/hollyberry/giftswap/internal/engine"
	"github.com/hollyberry/giftswap/internal/handlers/web"
	"github.com/hollyberry/giftswap/internal/models"
	"github.com/hollyberry/giftswap/internal/repositories/gamestate"
	gameService "github.com/hollyberry/giftswap/internal/services/game"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize the state repository
	stateRepo, err := gamestate.NewRedis(&gamestate.Config{
		RedisClient: redisClient,
		LockWait:    getEnvDuration("LOCK_TIMEOUT", 5*time.Second),
	})
	if err != nil {
		log.Fatalf("Failed to create game state repository: %v", err)
	}

	// Initialize the game engine
	mode := models.GameMode(getEnv("GAME_MODE", string(models.GameModeAuto)))
	if mode != models.GameModeAuto && mode != models.GameModeChoice {
		log.Fatalf("Invalid GAME_MODE %q: must be %q or %q", mode, models.GameModeAuto, models.GameModeChoice)
	}

	gameEngine, err := engine.New(&engine.Config{
		Mode:          mode,
		Catalog:       avatars.New(&avatars.Config{}),
		Generator:     assign.New(&assign.Config{}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game engine: %v", err)
	}

	// Initialize the game service
	gameSvc, err := gameService.New(&gameService.Config{
		StateRepo: stateRepo,
		Engine:    gameEngine,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize the web handler
	handler, err := web.New(&web.Config{
		GameService: gameSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create web handler: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	handler.RegisterRoutes(r)

	server := &http.Server{
		Addr:              ":" + getEnv("PORT", "8080"),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s (mode: %s)", server.Addr, mode)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets a duration environment variable or returns a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, value, err)
	}
	return parsed
}
