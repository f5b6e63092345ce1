package penalty

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nawal123158-wq/kartlichallenge/internal/repositories/penalty Repository

// Repository defines the interface for the append-only penalty log
type Repository interface {
	// AddPenalty appends a penalty record for a player
	AddPenalty(ctx context.Context, input *AddPenaltyInput) error

	// ListByGame retrieves a game's penalties in assignment order
	ListByGame(ctx context.Context, input *ListByGameInput) (*ListByGameOutput, error)

	// ListByPlayer retrieves one player's penalties in a game
	ListByPlayer(ctx context.Context, input *ListByPlayerInput) (*ListByPlayerOutput, error)
}
