package models

import (
	"time"
)

// CoinReason represents why coins were credited
type CoinReason string

const (
	// CoinReasonGameWin is the bonus for finishing with the top score
	CoinReasonGameWin CoinReason = "game_win"

	// CoinReasonGameParticipation is the bonus for finishing a game
	CoinReasonGameParticipation CoinReason = "game_participation"
)

// CoinTransaction is one append-only audit record in the currency ledger
type CoinTransaction struct {
	// ID is the unique identifier for the transaction
	ID string

	// UserID is the credited user
	UserID string

	// Amount is the number of coins credited
	Amount int

	// Reason is why the coins were credited
	Reason CoinReason

	// GameID is the game that triggered the credit
	GameID string

	// CreatedAt is when the transaction was recorded
	CreatedAt time.Time
}
