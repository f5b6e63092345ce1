package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

const (
	// Key prefix for Redis
	gameChatKeyPrefix = "game_chat:"
)

// Config holds configuration for the Redis chat repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed chat repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func gameChatKey(gameID string) string {
	return gameChatKeyPrefix + gameID
}

// AddMessage appends a message to a game's chat log
func (r *redisRepository) AddMessage(ctx context.Context, input *AddMessageInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}

	msg := input.Message
	if msg.ID == "" || msg.GameID == "" {
		return errors.New("message ID and game ID cannot be empty")
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = r.client.ZAdd(ctx, gameChatKey(msg.GameID), redis.Z{
		Score:  float64(msg.CreatedAt.UnixNano()),
		Member: data,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return nil
}

// ListByGame retrieves a game's most recent messages in chronological order
func (r *redisRepository) ListByGame(ctx context.Context, input *ListByGameInput) (*ListByGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	start := int64(0)
	if input.Limit > 0 {
		start = int64(-input.Limit)
	}

	raw, err := r.client.ZRange(ctx, gameChatKey(input.GameID), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*models.ChatMessage, 0, len(raw))
	for _, data := range raw {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(data), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, &msg)
	}

	return &ListByGameOutput{Messages: messages}, nil
}
