package coin_ledger

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
	coinBalanceKeyPrefix = "coin_balance:"
	coinTxKeyPrefix      = "coin_tx:"
	userCoinTxKeyPrefix  = "user_coin_tx:"
)

// Config holds configuration for the Redis coin ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed coin ledger repository
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

func coinBalanceKey(userID string) string {
	return coinBalanceKeyPrefix + userID
}

func coinTxKey(txID string) string {
	return coinTxKeyPrefix + txID
}

func userCoinTxKey(userID string) string {
	return userCoinTxKeyPrefix + userID
}

// AddCoins credits a user and appends the audit transaction
func (r *redisRepository) AddCoins(ctx context.Context, input *AddCoinsInput) error {
	if input == nil || input.Transaction == nil {
		return errors.New("input and transaction cannot be nil")
	}

	tx := input.Transaction
	if tx.ID == "" || tx.UserID == "" {
		return errors.New("transaction ID and user ID cannot be empty")
	}

	if tx.Amount <= 0 {
		return errors.New("amount must be positive")
	}

	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.IncrBy(ctx, coinBalanceKey(tx.UserID), int64(tx.Amount))
	pipe.Set(ctx, coinTxKey(tx.ID), data, 0)
	pipe.ZAdd(ctx, userCoinTxKey(tx.UserID), redis.Z{
		Score:  float64(tx.CreatedAt.UnixNano()),
		Member: tx.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add coins: %w", err)
	}

	return nil
}

// GetBalance retrieves a user's coin balance
func (r *redisRepository) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	balance, err := r.client.Get(ctx, coinBalanceKey(input.UserID)).Int()
	if err != nil {
		if err == redis.Nil {
			return &GetBalanceOutput{Balance: 0}, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &GetBalanceOutput{Balance: balance}, nil
}

// ListTransactions retrieves a user's transactions, newest first
func (r *redisRepository) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	ids, err := r.client.ZRevRange(ctx, userCoinTxKey(input.UserID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*models.CoinTransaction, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, coinTxKey(id)).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get transaction: %w", err)
		}

		var tx models.CoinTransaction
		if err := json.Unmarshal([]byte(data), &tx); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
		}

		transactions = append(transactions, &tx)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
