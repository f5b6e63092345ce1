package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nawal123158-wq/kartlichallenge/internal/repositories/game Repository

import (
	"context"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// Repository defines the interface for game data persistence.
//
// All state transitions are single-document conditional writes: the
// compare-and-set methods report whether the transition happened so a
// losing racer can treat its attempt as a no-op.
type Repository interface {
	// CreateGame creates a new waiting game in a group
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetActiveGamesByGroup retrieves the group's waiting/ready/started games
	GetActiveGamesByGroup(ctx context.Context, input *GetActiveGamesByGroupInput) (*GetActiveGamesByGroupOutput, error)

	// AddPlayer adds a player to the game's player list and turn order with
	// set semantics; a player appears at most once
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes a player from the game's player list and turn
	// order; the turn index is left untouched and interpreted modulo the
	// shrunken length
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) error

	// StartGame transitions waiting|ready -> started and initializes hand 1.
	// Returns Started=false when the game was not in a startable state.
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// AdvanceTurn increments the turn index modulo the turn order length and
	// stamps the turn start time
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) error

	// AdvanceHand transitions the game from one hand to the next, resetting
	// the turn index and hand timestamps. Conditional on the current hand
	// still matching FromHand.
	AdvanceHand(ctx context.Context, input *AdvanceHandInput) (*AdvanceHandOutput, error)

	// FinishGame transitions started -> finished with a finish timestamp.
	// Conditional on the game still being started.
	FinishGame(ctx context.Context, input *FinishGameInput) (*FinishGameOutput, error)
}
