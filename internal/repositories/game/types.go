package game

import (
	"time"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	GameID    string
	GroupID   string
	CreatedBy string
	Now       time.Time
}

// CreateGameOutput contains the created game
type CreateGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetActiveGamesByGroupInput contains parameters for listing active games
type GetActiveGamesByGroupInput struct {
	GroupID string
}

// GetActiveGamesByGroupOutput contains the group's active games
type GetActiveGamesByGroupOutput struct {
	Games []*models.Game
}

// AddPlayerInput contains parameters for adding a player to a game
type AddPlayerInput struct {
	GameID string
	UserID string
}

// AddPlayerOutput reports whether the player was newly added
type AddPlayerOutput struct {
	Added bool
}

// RemovePlayerInput contains parameters for removing a player from a game
type RemovePlayerInput struct {
	GameID string
	UserID string
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameID string
	Now    time.Time
}

// StartGameOutput reports whether the transition happened
type StartGameOutput struct {
	Started bool
}

// AdvanceTurnInput contains parameters for advancing the turn
type AdvanceTurnInput struct {
	GameID string
	Now    time.Time
}

// AdvanceHandInput contains parameters for advancing to the next hand
type AdvanceHandInput struct {
	GameID   string
	FromHand int
	Now      time.Time
}

// AdvanceHandOutput reports whether the transition happened
type AdvanceHandOutput struct {
	Advanced bool
	NextHand int
}

// FinishGameInput contains parameters for finishing a game
type FinishGameInput struct {
	GameID string
	Now    time.Time
}

// FinishGameOutput reports whether the transition happened
type FinishGameOutput struct {
	Finished bool
}
