package coin_ledger

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// AddCoinsInput is the input for crediting a user
type AddCoinsInput struct {
	// Transaction is the audit record; its Amount is applied to the balance
	Transaction *models.CoinTransaction
}

// GetBalanceInput is the input for retrieving a balance
type GetBalanceInput struct {
	// UserID is the user to look up
	UserID string
}

// GetBalanceOutput is the output from retrieving a balance
type GetBalanceOutput struct {
	// Balance is the user's current coin total
	Balance int
}

// ListTransactionsInput is the input for listing a user's transactions
type ListTransactionsInput struct {
	// UserID is the user to list for
	UserID string
}

// ListTransactionsOutput is the output from listing a user's transactions
type ListTransactionsOutput struct {
	// Transactions newest first
	Transactions []*models.CoinTransaction
}
