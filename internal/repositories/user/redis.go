package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

const (
	// Key prefixes for Redis
	userKeyPrefix    = "user:"
	sessionKeyPrefix = "session:"
)

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a session token is unknown or expired
	ErrSessionNotFound = errors.New("session not found")
)

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed user repository
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

func userKey(userID string) string {
	return userKeyPrefix + userID
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// SaveUser upserts a user profile. Scores are preserved when the profile
// already exists; use AddScores to change them.
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	u := input.User
	if u.ID == "" {
		return errors.New("user ID cannot be empty")
	}

	key := userKey(u.ID)
	pipe := r.client.Pipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"id":      u.ID,
		"name":    u.Name,
		"picture": u.Picture,
	})
	pipe.HSetNX(ctx, key, "weekly_score", strconv.Itoa(u.WeeklyScore))
	pipe.HSetNX(ctx, key, "total_score", strconv.Itoa(u.TotalScore))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, userKey(input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrUserNotFound
	}

	u := &models.User{
		ID:      fields["id"],
		Name:    fields["name"],
		Picture: fields["picture"],
	}
	u.WeeklyScore, _ = strconv.Atoi(fields["weekly_score"])
	u.TotalScore, _ = strconv.Atoi(fields["total_score"])

	return u, nil
}

// AddScores increments a user's weekly and total scores by the same delta
func (r *redisRepository) AddScores(ctx context.Context, input *AddScoresInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	key := userKey(input.UserID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}

	if exists == 0 {
		return ErrUserNotFound
	}

	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, key, "weekly_score", int64(input.Points))
	pipe.HIncrBy(ctx, key, "total_score", int64(input.Points))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add scores: %w", err)
	}

	return nil
}

// CreateSession stores a session token for a user. The key expires with
// the session, so stale tokens resolve to ErrSessionNotFound.
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	s := input.Session
	if s.Token == "" || s.UserID == "" {
		return errors.New("token and user ID cannot be empty")
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is already expired")
	}

	err := r.client.Set(ctx, sessionKey(s.Token), s.UserID, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetUserBySession resolves a session token to its user
func (r *redisRepository) GetUserBySession(ctx context.Context, input *GetUserBySessionInput) (*models.User, error) {
	if input == nil || input.Token == "" {
		return nil, errors.New("input and token cannot be empty")
	}

	userID, err := r.client.Get(ctx, sessionKey(input.Token)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return r.GetUser(ctx, &GetUserInput{UserID: userID})
}
