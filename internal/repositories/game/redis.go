package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix       = "game:"
	groupGamesKeyPrefix = "group_games:"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Games are stored as hashes so every state transition can be a single
// conditional server-side write instead of a read-modify-write round trip.
var (
	addPlayerScript = redis.NewScript(`
local players = cjson.decode(redis.call('HGET', KEYS[1], 'players') or '[]')
for _, id in ipairs(players) do
  if id == ARGV[1] then
    return 0
  end
end
table.insert(players, ARGV[1])
local order = cjson.decode(redis.call('HGET', KEYS[1], 'turn_order') or '[]')
local present = false
for _, id in ipairs(order) do
  if id == ARGV[1] then
    present = true
  end
end
if not present then
  table.insert(order, ARGV[1])
end
redis.call('HSET', KEYS[1], 'players', cjson.encode(players), 'turn_order', cjson.encode(order))
return 1
`)

	removePlayerScript = redis.NewScript(`
local function without(encoded, member)
  local list = cjson.decode(encoded or '[]')
  local kept = {}
  for _, id in ipairs(list) do
    if id ~= member then
      table.insert(kept, id)
    end
  end
  if #kept == 0 then
    return '[]'
  end
  return cjson.encode(kept)
end
local players = without(redis.call('HGET', KEYS[1], 'players'), ARGV[1])
local order = without(redis.call('HGET', KEYS[1], 'turn_order'), ARGV[1])
redis.call('HSET', KEYS[1], 'players', players, 'turn_order', order)
return 1
`)

	startGameScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if status ~= 'waiting' and status ~= 'ready' then
  return 0
end
redis.call('HSET', KEYS[1], 'status', 'started', 'current_hand', '1', 'current_turn_index', '0', 'hand_started_at', ARGV[1], 'turn_started_at', ARGV[1])
return 1
`)

	advanceTurnScript = redis.NewScript(`
local order = cjson.decode(redis.call('HGET', KEYS[1], 'turn_order') or '[]')
if #order == 0 then
  redis.call('HSET', KEYS[1], 'turn_started_at', ARGV[1])
  return 0
end
local idx = tonumber(redis.call('HGET', KEYS[1], 'current_turn_index') or '0')
idx = (idx + 1) % #order
redis.call('HSET', KEYS[1], 'current_turn_index', tostring(idx), 'turn_started_at', ARGV[1])
return idx
`)

	advanceHandScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if status ~= 'started' then
  return 0
end
local hand = tonumber(redis.call('HGET', KEYS[1], 'current_hand') or '0')
if hand ~= tonumber(ARGV[1]) then
  return 0
end
local next_hand = hand + 1
redis.call('HSET', KEYS[1], 'current_hand', tostring(next_hand), 'current_turn_index', '0', 'hand_started_at', ARGV[2], 'turn_started_at', ARGV[2])
return next_hand
`)

	finishGameScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if status ~= 'started' then
  return 0
end
redis.call('HSET', KEYS[1], 'status', 'finished', 'finished_at', ARGV[1])
redis.call('SREM', KEYS[2], ARGV[2])
return 1
`)
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
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

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}

func groupGamesKey(groupID string) string {
	return groupGamesKeyPrefix + groupID
}

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func gameToFields(game *models.Game) (map[string]interface{}, error) {
	players, err := json.Marshal(game.Players)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal players: %w", err)
	}

	order, err := json.Marshal(game.TurnOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal turn order: %w", err)
	}

	return map[string]interface{}{
		"id":                 game.ID,
		"group_id":           game.GroupID,
		"status":             string(game.Status),
		"created_by":         game.CreatedBy,
		"current_hand":       strconv.Itoa(game.CurrentHand),
		"players":            string(players),
		"turn_order":         string(order),
		"current_turn_index": strconv.Itoa(game.CurrentTurnIndex),
		"hand_started_at":    encodeTime(game.HandStartedAt),
		"turn_started_at":    encodeTime(game.TurnStartedAt),
		"created_at":         encodeTime(game.CreatedAt),
		"finished_at":        encodeTime(game.FinishedAt),
	}, nil
}

func fieldsToGame(fields map[string]string) (*models.Game, error) {
	game := &models.Game{
		ID:            fields["id"],
		GroupID:       fields["group_id"],
		Status:        models.GameStatus(fields["status"]),
		CreatedBy:     fields["created_by"],
		HandStartedAt: decodeTime(fields["hand_started_at"]),
		TurnStartedAt: decodeTime(fields["turn_started_at"]),
		CreatedAt:     decodeTime(fields["created_at"]),
		FinishedAt:    decodeTime(fields["finished_at"]),
		Players:       []string{},
		TurnOrder:     []string{},
	}

	game.CurrentHand, _ = strconv.Atoi(fields["current_hand"])
	game.CurrentTurnIndex, _ = strconv.Atoi(fields["current_turn_index"])

	if raw := fields["players"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &game.Players); err != nil {
			return nil, fmt.Errorf("failed to unmarshal players: %w", err)
		}
	}
	if raw := fields["turn_order"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &game.TurnOrder); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn order: %w", err)
		}
	}

	return game, nil
}

// CreateGame creates a new waiting game in a group
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.GameID == "" {
		return nil, errors.New("game ID cannot be empty")
	}

	if input.GroupID == "" {
		return nil, errors.New("group ID cannot be empty")
	}

	if input.CreatedBy == "" {
		return nil, errors.New("creator ID cannot be empty")
	}

	game := &models.Game{
		ID:        input.GameID,
		GroupID:   input.GroupID,
		Status:    models.GameStatusWaiting,
		CreatedBy: input.CreatedBy,
		Players:   []string{},
		TurnOrder: []string{},
		CreatedAt: input.Now,
	}

	fields, err := gameToFields(game)
	if err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, gameKey(game.ID), fields)
	pipe.SAdd(ctx, groupGamesKey(game.GroupID), game.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &CreateGameOutput{Game: game}, nil
}

// GetGame retrieves a game by ID
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, gameKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrGameNotFound
	}

	return fieldsToGame(fields)
}

// GetActiveGamesByGroup retrieves the group's waiting/ready/started games
func (r *redisRepository) GetActiveGamesByGroup(ctx context.Context, input *GetActiveGamesByGroupInput) (*GetActiveGamesByGroupOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	gameIDs, err := r.client.SMembers(ctx, groupGamesKey(input.GroupID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get group games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		game, err := r.GetGame(ctx, &GetGameInput{GameID: gameID})
		if err != nil {
			if errors.Is(err, ErrGameNotFound) {
				continue
			}
			return nil, err
		}

		// The index can briefly hold finished games; filter on status
		for _, status := range models.ActiveStatuses {
			if game.Status == status {
				games = append(games, game)
				break
			}
		}
	}

	return &GetActiveGamesByGroupOutput{Games: games}, nil
}

// AddPlayer adds a player to the game's player list and turn order
func (r *redisRepository) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID and user ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, gameKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check game: %w", err)
	}
	if exists == 0 {
		return nil, ErrGameNotFound
	}

	added, err := addPlayerScript.Run(ctx, r.client, []string{gameKey(input.GameID)}, input.UserID).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	return &AddPlayerOutput{Added: added == 1}, nil
}

// RemovePlayer removes a player from the game's player list and turn order
func (r *redisRepository) RemovePlayer(ctx context.Context, input *RemovePlayerInput) error {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return errors.New("input, game ID and user ID cannot be empty")
	}

	if err := removePlayerScript.Run(ctx, r.client, []string{gameKey(input.GameID)}, input.UserID).Err(); err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}

	return nil
}

// StartGame transitions waiting|ready -> started and initializes hand 1
func (r *redisRepository) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	started, err := startGameScript.Run(ctx, r.client, []string{gameKey(input.GameID)}, encodeTime(input.Now)).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return &StartGameOutput{Started: started == 1}, nil
}

// AdvanceTurn increments the turn index modulo the turn order length
func (r *redisRepository) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	if err := advanceTurnScript.Run(ctx, r.client, []string{gameKey(input.GameID)}, encodeTime(input.Now)).Err(); err != nil {
		return fmt.Errorf("failed to advance turn: %w", err)
	}

	return nil
}

// AdvanceHand transitions the game from one hand to the next
func (r *redisRepository) AdvanceHand(ctx context.Context, input *AdvanceHandInput) (*AdvanceHandOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	next, err := advanceHandScript.Run(ctx, r.client, []string{gameKey(input.GameID)}, input.FromHand, encodeTime(input.Now)).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to advance hand: %w", err)
	}

	return &AdvanceHandOutput{
		Advanced: next != 0,
		NextHand: next,
	}, nil
}

// FinishGame transitions started -> finished with a finish timestamp
func (r *redisRepository) FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	groupID, err := r.client.HGet(ctx, gameKey(input.GameID), "group_id").Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game group: %w", err)
	}

	keys := []string{gameKey(input.GameID), groupGamesKey(groupID)}
	finished, err := finishGameScript.Run(ctx, r.client, keys, encodeTime(input.Now), input.GameID).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to finish game: %w", err)
	}

	return &FinishGameOutput{Finished: finished == 1}, nil
}
