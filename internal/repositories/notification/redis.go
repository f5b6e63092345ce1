package notification

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
	notificationKeyPrefix      = "notification:"
	userNotificationsKeyPrefix = "user_notifications:"
)

// ErrNotificationNotFound is returned when a notification is not found
var ErrNotificationNotFound = errors.New("notification not found")

// Config holds configuration for the Redis notification repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed notification repository
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

func notificationKey(notificationID string) string {
	return notificationKeyPrefix + notificationID
}

func userNotificationsKey(userID string) string {
	return userNotificationsKeyPrefix + userID
}

// AddNotification stores a notification for a user
func (r *redisRepository) AddNotification(ctx context.Context, input *AddNotificationInput) error {
	if input == nil || input.Notification == nil {
		return errors.New("input and notification cannot be nil")
	}

	n := input.Notification
	if n.ID == "" || n.UserID == "" {
		return errors.New("notification ID and user ID cannot be empty")
	}

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, notificationKey(n.ID), data, 0)
	pipe.ZAdd(ctx, userNotificationsKey(n.UserID), redis.Z{
		Score:  float64(n.CreatedAt.UnixNano()),
		Member: n.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}

// ListByUser retrieves a user's notifications, newest first
func (r *redisRepository) ListByUser(ctx context.Context, input *ListByUserInput) (*ListByUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	ids, err := r.client.ZRevRange(ctx, userNotificationsKey(input.UserID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*models.Notification, 0, len(ids))
	for _, id := range ids {
		n, err := r.getNotification(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotificationNotFound) {
				continue
			}
			return nil, err
		}

		if input.UnreadOnly && n.Read {
			continue
		}

		notifications = append(notifications, n)
	}

	return &ListByUserOutput{Notifications: notifications}, nil
}

// MarkRead flags a user's notification as seen
func (r *redisRepository) MarkRead(ctx context.Context, input *MarkReadInput) error {
	if input == nil || input.UserID == "" || input.NotificationID == "" {
		return errors.New("input, user ID and notification ID cannot be empty")
	}

	n, err := r.getNotification(ctx, input.NotificationID)
	if err != nil {
		return err
	}

	if n.UserID != input.UserID {
		return ErrNotificationNotFound
	}

	if n.Read {
		return nil
	}

	n.Read = true
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := r.client.Set(ctx, notificationKey(n.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}

func (r *redisRepository) getNotification(ctx context.Context, notificationID string) (*models.Notification, error) {
	data, err := r.client.Get(ctx, notificationKey(notificationID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	var n models.Notification
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	return &n, nil
}
