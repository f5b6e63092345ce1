package models

import (
	"time"
)

// PenaltyReason represents why a penalty card was assigned
type PenaltyReason string

const (
	// PenaltyReasonRefuse indicates the player refused their dare
	PenaltyReasonRefuse PenaltyReason = "refuse"

	// PenaltyReasonRejected indicates the player's submission was voted down
	PenaltyReasonRejected PenaltyReason = "rejected"
)

// Penalty records a penalty card assigned to a player. The log is
// append-only; penalties have no further lifecycle.
type Penalty struct {
	// ID is the unique identifier for the penalty record
	ID string

	// GameID is the game the penalty was assigned in
	GameID string

	// UserID is the penalized player
	UserID string

	// CardID references the penalty card drawn for the player
	CardID string

	// Reason is why the penalty was assigned
	Reason PenaltyReason

	// CreatedAt is when the penalty was assigned
	CreatedAt time.Time
}
