package coin_ledger

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nawal123158-wq/kartlichallenge/internal/repositories/coin_ledger Repository

// Repository defines the interface for the coin currency ledger
type Repository interface {
	// AddCoins credits a user and appends the audit transaction
	AddCoins(ctx context.Context, input *AddCoinsInput) error

	// GetBalance retrieves a user's coin balance
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// ListTransactions retrieves a user's transactions, newest first
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error)
}
