package card

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

const (
	// Key prefixes for Redis
	cardKeyPrefix     = "card:"
	categoryKeyPrefix = "cards:category:"
	titleIndexKey     = "cards:title_index"
)

// ErrCardNotFound is returned when a card is not found
var ErrCardNotFound = errors.New("card not found")

// Config holds configuration for the Redis card repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed card repository
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

func titleIndexField(category models.CardCategory, title string) string {
	return fmt.Sprintf("%s|%s", category, title)
}

// SeedCatalog upserts catalog cards keyed by (category, title)
func (r *redisRepository) SeedCatalog(ctx context.Context, input *SeedCatalogInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	for _, seed := range input.Cards {
		field := titleIndexField(seed.Category, seed.Title)

		cardID, err := r.client.HGet(ctx, titleIndexKey, field).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to read title index: %w", err)
		}
		if err == redis.Nil {
			cardID = uuid.New().String()
		}

		card := &models.Card{
			ID:               cardID,
			Category:         seed.Category,
			Title:            seed.Title,
			Description:      seed.Description,
			Difficulty:       seed.Difficulty,
			Points:           seed.Points,
			TimeLimitSeconds: seed.TimeLimitSeconds,
		}

		cardJSON, err := json.Marshal(card)
		if err != nil {
			return fmt.Errorf("failed to marshal card: %w", err)
		}

		pipe := r.client.Pipeline()
		pipe.Set(ctx, cardKeyPrefix+cardID, cardJSON, 0)
		pipe.SAdd(ctx, categoryKeyPrefix+string(seed.Category), cardID)
		pipe.HSet(ctx, titleIndexKey, field, cardID)

		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed card %q: %w", seed.Title, err)
		}
	}

	return nil
}

// RemoveCards deletes catalog cards by (category, title)
func (r *redisRepository) RemoveCards(ctx context.Context, input *RemoveCardsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	for _, key := range input.Keys {
		field := titleIndexField(key.Category, key.Title)

		cardID, err := r.client.HGet(ctx, titleIndexKey, field).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read title index: %w", err)
		}

		pipe := r.client.Pipeline()
		pipe.Del(ctx, cardKeyPrefix+cardID)
		pipe.SRem(ctx, categoryKeyPrefix+string(key.Category), cardID)
		pipe.HDel(ctx, titleIndexKey, field)

		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to remove card %q: %w", key.Title, err)
		}
	}

	return nil
}

// GetCard retrieves a card by ID
func (r *redisRepository) GetCard(ctx context.Context, input *GetCardInput) (*models.Card, error) {
	if input == nil || input.CardID == "" {
		return nil, errors.New("input and card ID cannot be empty")
	}

	cardJSON, err := r.client.Get(ctx, cardKeyPrefix+input.CardID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	var card models.Card
	if err := json.Unmarshal([]byte(cardJSON), &card); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card: %w", err)
	}

	return &card, nil
}

// GetCards retrieves multiple cards by ID, skipping missing ones
func (r *redisRepository) GetCards(ctx context.Context, input *GetCardsInput) (*GetCardsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.CardIDs) == 0 {
		return &GetCardsOutput{Cards: []*models.Card{}}, nil
	}

	keys := make([]string, 0, len(input.CardIDs))
	for _, id := range input.CardIDs {
		keys = append(keys, cardKeyPrefix+id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cards: %w", err)
	}

	cards := make([]*models.Card, 0, len(values))
	for _, value := range values {
		cardJSON, ok := value.(string)
		if !ok {
			// Card was deleted; skip it
			continue
		}

		var card models.Card
		if err := json.Unmarshal([]byte(cardJSON), &card); err != nil {
			return nil, fmt.Errorf("failed to unmarshal card: %w", err)
		}
		cards = append(cards, &card)
	}

	return &GetCardsOutput{Cards: cards}, nil
}

// ListByCategories returns the full pool tagged with any of the categories
func (r *redisRepository) ListByCategories(ctx context.Context, input *ListByCategoriesInput) (*ListByCategoriesOutput, error) {
	if input == nil || len(input.Categories) == 0 {
		return nil, errors.New("input and categories cannot be empty")
	}

	setKeys := make([]string, 0, len(input.Categories))
	for _, category := range input.Categories {
		setKeys = append(setKeys, categoryKeyPrefix+string(category))
	}

	cardIDs, err := r.client.SUnion(ctx, setKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to union category sets: %w", err)
	}

	cardsOutput, err := r.GetCards(ctx, &GetCardsInput{CardIDs: cardIDs})
	if err != nil {
		return nil, err
	}

	return &ListByCategoriesOutput{Cards: cardsOutput.Cards}, nil
}

// GetRandomCard returns one card drawn uniformly from a category
func (r *redisRepository) GetRandomCard(ctx context.Context, input *GetRandomCardInput) (*models.Card, error) {
	if input == nil || input.Category == "" {
		return nil, errors.New("input and category cannot be empty")
	}

	cardID, err := r.client.SRandMember(ctx, categoryKeyPrefix+string(input.Category)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to sample category: %w", err)
	}

	return r.GetCard(ctx, &GetCardInput{CardID: cardID})
}
