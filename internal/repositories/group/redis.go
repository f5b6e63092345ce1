package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	groupMembersKeyPrefix = "group_members:"
)

// Config holds configuration for the Redis group repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed group repository
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

func groupMembersKey(groupID string) string {
	return groupMembersKeyPrefix + groupID
}

// AddMember adds a user to a group
func (r *redisRepository) AddMember(ctx context.Context, input *AddMemberInput) error {
	if input == nil || input.GroupID == "" || input.UserID == "" {
		return errors.New("input, group ID and user ID cannot be empty")
	}

	err := r.client.SAdd(ctx, groupMembersKey(input.GroupID), input.UserID).Err()
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	return nil
}

// IsMember reports whether a user belongs to a group
func (r *redisRepository) IsMember(ctx context.Context, input *IsMemberInput) (*IsMemberOutput, error) {
	if input == nil || input.GroupID == "" || input.UserID == "" {
		return nil, errors.New("input, group ID and user ID cannot be empty")
	}

	member, err := r.client.SIsMember(ctx, groupMembersKey(input.GroupID), input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	return &IsMemberOutput{Member: member}, nil
}

// ListMembers retrieves a group's member IDs
func (r *redisRepository) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, groupMembersKey(input.GroupID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &ListMembersOutput{UserIDs: ids}, nil
}
