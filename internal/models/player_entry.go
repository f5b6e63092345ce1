package models

import (
	"time"
)

// PlayerEntry represents a player's participation in a specific game.
// Entries persist after the game finishes so scores can be audited.
type PlayerEntry struct {
	// ID is a unique identifier for this participation
	ID string

	// GameID is the ID of the game the player is participating in
	GameID string

	// UserID is the ID of the player
	UserID string

	// PassUsed indicates the player has spent their one pass for this game
	PassUsed bool

	// SwapUsed indicates the player has spent their one swap for this game
	SwapUsed bool

	// Score is the player's accumulated points in this game
	Score int

	// JoinedAt is when the player joined the game
	JoinedAt time.Time
}
