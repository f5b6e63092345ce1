package hand_card

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

const (
	// Key prefixes for Redis
	cardKeyPrefix       = "hand_card:"
	handCardsKeyPrefix  = "hand_cards:"
	playerHandKeyPrefix = "player_hand:"
)

// ErrHandCardNotFound is returned when a dealt card is not found
var ErrHandCardNotFound = errors.New("hand card not found")

// markStatusScript transitions a card out of in_hand exactly once
var markStatusScript = redis.NewScript(`
local status = redis.call('HGET', KEYS[1], 'status')
if status ~= 'in_hand' then
  return 0
end
redis.call('HSET', KEYS[1], 'status', ARGV[1], 'selected', '0')
return 1
`)

// Config holds configuration for the Redis hand card repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed hand card repository
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

func cardKey(handCardID string) string {
	return cardKeyPrefix + handCardID
}

func handCardsKey(gameID string, handNumber int) string {
	return fmt.Sprintf("%s%s:%d", handCardsKeyPrefix, gameID, handNumber)
}

func playerHandKey(gameID string, handNumber int, userID string) string {
	return fmt.Sprintf("%s%s:%d:%s", playerHandKeyPrefix, gameID, handNumber, userID)
}

func fieldsToHandCard(fields map[string]string) *models.HandCard {
	card := &models.HandCard{
		ID:       fields["id"],
		GameID:   fields["game_id"],
		UserID:   fields["user_id"],
		CardID:   fields["card_id"],
		Status:   models.HandCardStatus(fields["status"]),
		Selected: fields["selected"] == "1",
	}
	card.HandNumber, _ = strconv.Atoi(fields["hand_number"])
	return card
}

// DealCards stores a batch of freshly dealt cards
func (r *redisRepository) DealCards(ctx context.Context, input *DealCardsInput) error {
	if input == nil || len(input.Cards) == 0 {
		return errors.New("input and cards cannot be empty")
	}

	pipe := r.client.Pipeline()
	for _, card := range input.Cards {
		if card.ID == "" || card.GameID == "" || card.UserID == "" {
			return errors.New("hand card ID, game ID and user ID cannot be empty")
		}

		selected := "0"
		if card.Selected {
			selected = "1"
		}

		pipe.HSet(ctx, cardKey(card.ID), map[string]interface{}{
			"id":          card.ID,
			"game_id":     card.GameID,
			"hand_number": strconv.Itoa(card.HandNumber),
			"user_id":     card.UserID,
			"card_id":     card.CardID,
			"status":      string(card.Status),
			"selected":    selected,
		})
		pipe.SAdd(ctx, handCardsKey(card.GameID, card.HandNumber), card.ID)
		pipe.SAdd(ctx, playerHandKey(card.GameID, card.HandNumber, card.UserID), card.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to deal cards: %w", err)
	}

	return nil
}

// HasCards reports whether any cards were already dealt for a hand
func (r *redisRepository) HasCards(ctx context.Context, input *HasCardsInput) (*HasCardsOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	count, err := r.client.SCard(ctx, handCardsKey(input.GameID, input.HandNumber)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check dealt cards: %w", err)
	}

	return &HasCardsOutput{HasCards: count > 0}, nil
}

func (r *redisRepository) getCards(ctx context.Context, ids []string) ([]*models.HandCard, error) {
	if len(ids) == 0 {
		return []*models.HandCard{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.MapStringStringCmd, 0, len(ids))
	for _, id := range ids {
		commands = append(commands, pipe.HGetAll(ctx, cardKey(id)))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get hand cards: %w", err)
	}

	cards := make([]*models.HandCard, 0, len(ids))
	for _, cmd := range commands {
		fields, err := cmd.Result()
		if err != nil || len(fields) == 0 {
			continue
		}
		cards = append(cards, fieldsToHandCard(fields))
	}

	return cards, nil
}

// CountInHand counts cards still in_hand for a hand across all players
func (r *redisRepository) CountInHand(ctx context.Context, input *CountInHandInput) (*CountInHandOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, handCardsKey(input.GameID, input.HandNumber)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list hand cards: %w", err)
	}

	cards, err := r.getCards(ctx, ids)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, card := range cards {
		if card.Status == models.HandCardStatusInHand {
			count++
		}
	}

	return &CountInHandOutput{Count: count}, nil
}

// ListForPlayer retrieves a player's cards for a hand
func (r *redisRepository) ListForPlayer(ctx context.Context, input *ListForPlayerInput) (*ListForPlayerOutput, error) {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return nil, errors.New("input, game ID and user ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, playerHandKey(input.GameID, input.HandNumber, input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list player cards: %w", err)
	}

	cards, err := r.getCards(ctx, ids)
	if err != nil {
		return nil, err
	}

	if input.InHandOnly {
		inHand := make([]*models.HandCard, 0, len(cards))
		for _, card := range cards {
			if card.Status == models.HandCardStatusInHand {
				inHand = append(inHand, card)
			}
		}
		cards = inHand
	}

	return &ListForPlayerOutput{Cards: cards}, nil
}

// FindInHand finds a player's in_hand card by catalog card ID
func (r *redisRepository) FindInHand(ctx context.Context, input *FindInHandInput) (*models.HandCard, error) {
	if input == nil || input.GameID == "" || input.UserID == "" || input.CardID == "" {
		return nil, errors.New("input, game ID, user ID and card ID cannot be empty")
	}

	listOutput, err := r.ListForPlayer(ctx, &ListForPlayerInput{
		GameID:     input.GameID,
		HandNumber: input.HandNumber,
		UserID:     input.UserID,
		InHandOnly: true,
	})
	if err != nil {
		return nil, err
	}

	for _, card := range listOutput.Cards {
		if card.CardID == input.CardID {
			return card, nil
		}
	}

	return nil, ErrHandCardNotFound
}

// MarkStatus transitions a card out of in_hand
func (r *redisRepository) MarkStatus(ctx context.Context, input *MarkStatusInput) (*MarkStatusOutput, error) {
	if input == nil || input.HandCardID == "" {
		return nil, errors.New("input and hand card ID cannot be empty")
	}

	if input.Status == models.HandCardStatusInHand {
		return nil, errors.New("cannot transition a card back to in_hand")
	}

	marked, err := markStatusScript.Run(ctx, r.client, []string{cardKey(input.HandCardID)}, string(input.Status)).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to mark hand card: %w", err)
	}

	return &MarkStatusOutput{Marked: marked == 1}, nil
}

// DiscardRemaining discards every other in_hand card a player holds
func (r *redisRepository) DiscardRemaining(ctx context.Context, input *DiscardRemainingInput) error {
	if input == nil || input.GameID == "" || input.UserID == "" {
		return errors.New("input, game ID and user ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, playerHandKey(input.GameID, input.HandNumber, input.UserID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list player cards: %w", err)
	}

	for _, id := range ids {
		if id == input.ExcludeHandCardID {
			continue
		}

		// Already-terminal cards are left alone by the conditional write
		if _, err := r.MarkStatus(ctx, &MarkStatusInput{
			HandCardID: id,
			Status:     models.HandCardStatusDiscarded,
		}); err != nil {
			return err
		}
	}

	return nil
}

// SetSelected pins one in_hand card as the only playable one
func (r *redisRepository) SetSelected(ctx context.Context, input *SetSelectedInput) error {
	if input == nil || input.GameID == "" || input.UserID == "" || input.HandCardID == "" {
		return errors.New("input, game ID, user ID and hand card ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, playerHandKey(input.GameID, input.HandNumber, input.UserID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list player cards: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, id := range ids {
		if id == input.HandCardID {
			pipe.HSet(ctx, cardKey(id), "selected", "1")
		} else {
			pipe.HSet(ctx, cardKey(id), "selected", "0")
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to select card: %w", err)
	}

	return nil
}

// DeleteCard removes a dealt card entirely
func (r *redisRepository) DeleteCard(ctx context.Context, input *DeleteCardInput) error {
	if input == nil || input.HandCardID == "" || input.GameID == "" || input.UserID == "" {
		return errors.New("input, hand card ID, game ID and user ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, cardKey(input.HandCardID))
	pipe.SRem(ctx, handCardsKey(input.GameID, input.HandNumber), input.HandCardID)
	pipe.SRem(ctx, playerHandKey(input.GameID, input.HandNumber, input.UserID), input.HandCardID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete hand card: %w", err)
	}

	return nil
}
