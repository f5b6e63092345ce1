package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/nawal123158-wq/kartlichallenge/internal/common/clock"
	commonuuid "github.com/nawal123158-wq/kartlichallenge/internal/common/uuid"
	"github.com/nawal123158-wq/kartlichallenge/internal/deck"
	"github.com/nawal123158-wq/kartlichallenge/internal/handlers/httpapi"
	cardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/card"
	chatRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/chat"
	coinRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/coin_ledger"
	gameRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/game"
	groupRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/group"
	handCardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/hand_card"
	notificationRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/notification"
	penaltyRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/penalty"
	playerRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/player"
	submissionRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/submission"
	userRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/user"
	gameService "github.com/nawal123158-wq/kartlichallenge/internal/services/game"
	"github.com/nawal123158-wq/kartlichallenge/internal/services/messaging"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	cards, err := cardRepo.NewRedis(&cardRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create card repository: %v", err)
	}

	games, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	handCards, err := handCardRepo.NewRedis(&handCardRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create hand card repository: %v", err)
	}

	submissions, err := submissionRepo.NewRedis(&submissionRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create submission repository: %v", err)
	}

	penalties, err := penaltyRepo.NewRedis(&penaltyRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create penalty repository: %v", err)
	}

	groups, err := groupRepo.NewRedis(&groupRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create group repository: %v", err)
	}

	chats, err := chatRepo.NewRedis(&chatRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create chat repository: %v", err)
	}

	notifications, err := notificationRepo.NewRedis(&notificationRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create notification repository: %v", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	coins, err := coinRepo.NewRedis(&coinRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create coin ledger repository: %v", err)
	}

	// Seed the card catalog and drop deprecated cards
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelSeed()

	seed := make([]cardRepo.SeedCard, 0, len(deck.Catalog()))
	for _, entry := range deck.Catalog() {
		seed = append(seed, cardRepo.SeedCard{
			Category:         entry.Category,
			Title:            entry.Title,
			Description:      entry.Description,
			Difficulty:       entry.Difficulty,
			Points:           entry.Points,
			TimeLimitSeconds: entry.TimeLimitSeconds,
		})
	}

	if err := cards.SeedCatalog(seedCtx, &cardRepo.SeedCatalogInput{Cards: seed}); err != nil {
		log.Fatalf("Failed to seed card catalog: %v", err)
	}

	deprecated := make([]cardRepo.CardKey, 0, len(deck.Deprecated()))
	for _, entry := range deck.Deprecated() {
		deprecated = append(deprecated, cardRepo.CardKey{
			Category: entry.Category,
			Title:    entry.Title,
		})
	}

	if err := cards.RemoveCards(seedCtx, &cardRepo.RemoveCardsInput{Keys: deprecated}); err != nil {
		log.Fatalf("Failed to remove deprecated cards: %v", err)
	}

	// Initialize messaging service
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// The hub feeds websocket watchers and doubles as the event sink
	hub := httpapi.NewHub()

	// Initialize game service
	gameSvc, err := gameService.NewService(&gameService.Config{
		GameRepo:         games,
		PlayerRepo:       players,
		HandCardRepo:     handCards,
		CardRepo:         cards,
		SubmissionRepo:   submissions,
		PenaltyRepo:      penalties,
		GroupRepo:        groups,
		ChatRepo:         chats,
		NotificationRepo: notifications,
		UserRepo:         users,
		CoinRepo:         coins,
		Sampler:          deck.New(&deck.Config{}),
		Clock:            &clock.DefaultClock{},
		UUIDGenerator:    commonuuid.New(),
		Messaging:        messagingSvc,
		Events:           hub,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize HTTP server
	api, err := httpapi.New(&httpapi.Config{
		GameService: gameSvc,
		UserRepo:    users,
		Hub:         hub,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP server: %v", err)
	}

	addr := getEnv("LISTEN_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for a termination signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
