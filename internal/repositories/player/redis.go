package player

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
	entryKeyPrefix       = "player_entry:"
	gamePlayersKeyPrefix = "game_players:"
)

// ErrEntryNotFound is returned when a player entry is not found
var ErrEntryNotFound = errors.New("player entry not found")

// useFlagScript consumes a one-time flag only if it is still unspent
var useFlagScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
if redis.call('HGET', KEYS[1], ARGV[1]) == '1' then
  return 0
end
redis.call('HSET', KEYS[1], ARGV[1], '1')
return 1
`)

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

func entryKey(gameID, userID string) string {
	return fmt.Sprintf("%s%s:%s", entryKeyPrefix, gameID, userID)
}

func gamePlayersKey(gameID string) string {
	return gamePlayersKeyPrefix + gameID
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func fieldsToEntry(fields map[string]string) *models.PlayerEntry {
	entry := &models.PlayerEntry{
		ID:       fields["id"],
		GameID:   fields["game_id"],
		UserID:   fields["user_id"],
		PassUsed: fields["pass_used"] == "1",
		SwapUsed: fields["swap_used"] == "1",
	}

	entry.Score, _ = strconv.Atoi(fields["score"])
	if raw := fields["joined_at"]; raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			entry.JoinedAt = t
		}
	}

	return entry
}

// CreateEntry creates a player entry for a game
func (r *redisRepository) CreateEntry(ctx context.Context, input *CreateEntryInput) (*CreateEntryOutput, error) {
	if input == nil || input.Entry == nil {
		return nil, errors.New("input and entry cannot be nil")
	}

	entry := input.Entry
	if entry.GameID == "" || entry.UserID == "" {
		return nil, errors.New("game ID and user ID cannot be empty")
	}

	// Set membership decides whether this player already joined
	added, err := r.client.SAdd(ctx, gamePlayersKey(entry.GameID), entry.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	if added == 0 {
		return &CreateEntryOutput{Created: false}, nil
	}

	fields := map[string]interface{}{
		"id":        entry.ID,
		"game_id":   entry.GameID,
		"user_id":   entry.UserID,
		"pass_used": boolField(entry.PassUsed),
		"swap_used": boolField(entry.SwapUsed),
		"score":     strconv.Itoa(entry.Score),
		"joined_at": entry.JoinedAt.UTC().Format(time.RFC3339Nano),
	}

	if err := r.client.HSet(ctx, entryKey(entry.GameID, entry.UserID), fields).Err(); err != nil {
		return nil, fmt.Errorf("failed to save player entry: %w", err)
	}

	return &CreateEntryOutput{Created: true}, nil
}

// GetEntry retrieves a player's entry in a game
func (r *redisRepository) GetEntry(ctx context.Context, input *GetEntryInput) (*models.PlayerEntry, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID and user ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, entryKey(input.GameID, input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player entry: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrEntryNotFound
	}

	return fieldsToEntry(fields), nil
}

// ListEntries retrieves all player entries for a game
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	userIDs, err := r.client.SMembers(ctx, gamePlayersKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	entries := make([]*models.PlayerEntry, 0, len(userIDs))
	for _, userID := range userIDs {
		entry, err := r.GetEntry(ctx, &GetEntryInput{GameID: input.GameID, UserID: userID})
		if err != nil {
			if errors.Is(err, ErrEntryNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, entry)
	}

	return &ListEntriesOutput{Entries: entries}, nil
}

// CountPlayers returns the number of players in a game
func (r *redisRepository) CountPlayers(ctx context.Context, input *CountPlayersInput) (*CountPlayersOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	count, err := r.client.SCard(ctx, gamePlayersKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}

	return &CountPlayersOutput{Count: int(count)}, nil
}

// DeleteEntry removes a player's entry from a game
func (r *redisRepository) DeleteEntry(ctx context.Context, input *DeleteEntryInput) error {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return errors.New("input, game ID and user ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.SRem(ctx, gamePlayersKey(input.GameID), input.UserID)
	pipe.Del(ctx, entryKey(input.GameID, input.UserID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player entry: %w", err)
	}

	return nil
}

// UseFlag atomically consumes a one-time flag
func (r *redisRepository) UseFlag(ctx context.Context, input *UseFlagInput) (*UseFlagOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID and user ID cannot be empty")
	}

	if input.Flag != FlagPass && input.Flag != FlagSwap {
		return nil, fmt.Errorf("unknown flag %q", input.Flag)
	}

	result, err := useFlagScript.Run(ctx, r.client, []string{entryKey(input.GameID, input.UserID)}, string(input.Flag)).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to use flag: %w", err)
	}

	if result == -1 {
		return nil, ErrEntryNotFound
	}

	return &UseFlagOutput{Used: result == 1}, nil
}

// AddScore atomically increments a player's game score
func (r *redisRepository) AddScore(ctx context.Context, input *AddScoreInput) error {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return errors.New("input, game ID and user ID cannot be empty")
	}

	if err := r.client.HIncrBy(ctx, entryKey(input.GameID, input.UserID), "score", int64(input.Points)).Err(); err != nil {
		return fmt.Errorf("failed to add score: %w", err)
	}

	return nil
}
