package penalty

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

const (
	// Key prefixes for Redis
	penaltyKeyPrefix       = "penalty:"
	gamePenaltiesKeyPrefix = "game_penalties:"
)

// Config holds configuration for the Redis penalty repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed penalty repository
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

func penaltyKey(penaltyID string) string {
	return penaltyKeyPrefix + penaltyID
}

func gamePenaltiesKey(gameID string) string {
	return gamePenaltiesKeyPrefix + gameID
}

// AddPenalty appends a penalty record for a player
func (r *redisRepository) AddPenalty(ctx context.Context, input *AddPenaltyInput) error {
	if input == nil || input.Penalty == nil {
		return errors.New("input and penalty cannot be nil")
	}

	p := input.Penalty
	if p.ID == "" || p.GameID == "" || p.UserID == "" {
		return errors.New("penalty ID, game ID and user ID cannot be empty")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal penalty: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, penaltyKey(p.ID), data, 0)
	pipe.ZAdd(ctx, gamePenaltiesKey(p.GameID), redis.Z{
		Score:  float64(p.CreatedAt.UnixNano()),
		Member: p.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save penalty: %w", err)
	}

	return nil
}

// ListByGame retrieves a game's penalties in assignment order
func (r *redisRepository) ListByGame(ctx context.Context, input *ListByGameInput) (*ListByGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	penalties, err := r.listByGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &ListByGameOutput{Penalties: penalties}, nil
}

// ListByPlayer retrieves one player's penalties in a game
func (r *redisRepository) ListByPlayer(ctx context.Context, input *ListByPlayerInput) (*ListByPlayerOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID and user ID cannot be empty")
	}

	all, err := r.listByGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	penalties := make([]*models.Penalty, 0, len(all))
	for _, p := range all {
		if p.UserID == input.UserID {
			penalties = append(penalties, p)
		}
	}

	return &ListByPlayerOutput{Penalties: penalties}, nil
}

func (r *redisRepository) listByGame(ctx context.Context, gameID string) ([]*models.Penalty, error) {
	ids, err := r.client.ZRange(ctx, gamePenaltiesKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list penalties: %w", err)
	}

	penalties := make([]*models.Penalty, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, penaltyKey(id)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get penalty: %w", err)
		}

		var p models.Penalty
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal penalty: %w", err)
		}

		penalties = append(penalties, &p)
	}

	return penalties, nil
}
