package penalty

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// AddPenaltyInput is the input for adding a penalty record
type AddPenaltyInput struct {
	// Penalty is the record to append
	Penalty *models.Penalty
}

// ListByGameInput is the input for listing a game's penalties
type ListByGameInput struct {
	// GameID is the game to list for
	GameID string
}

// ListByGameOutput is the output from listing a game's penalties
type ListByGameOutput struct {
	// Penalties in assignment order
	Penalties []*models.Penalty
}

// ListByPlayerInput is the input for listing one player's penalties
type ListByPlayerInput struct {
	// GameID is the game to list for
	GameID string

	// UserID is the player to filter by
	UserID string
}

// ListByPlayerOutput is the output from listing one player's penalties
type ListByPlayerOutput struct {
	// Penalties in assignment order
	Penalties []*models.Penalty
}
