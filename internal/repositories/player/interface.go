package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nawal123158-wq/kartlichallenge/internal/repositories/player Repository

import (
	"context"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// Repository defines the interface for player entry persistence.
//
// A player entry is one player's participation in one game. Entries are
// never deleted after a game finishes; removal only happens when a player
// switches to another active game in the same group.
type Repository interface {
	// CreateEntry creates a player entry; Created=false when the player
	// already has an entry in the game
	CreateEntry(ctx context.Context, input *CreateEntryInput) (*CreateEntryOutput, error)

	// GetEntry retrieves a player's entry in a game
	GetEntry(ctx context.Context, input *GetEntryInput) (*models.PlayerEntry, error)

	// ListEntries retrieves all player entries for a game
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// CountPlayers returns the number of players in a game
	CountPlayers(ctx context.Context, input *CountPlayersInput) (*CountPlayersOutput, error)

	// DeleteEntry removes a player's entry from a game
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) error

	// UseFlag atomically consumes a one-time flag (pass or swap).
	// Used=false when the flag was already spent.
	UseFlag(ctx context.Context, input *UseFlagInput) (*UseFlagOutput, error)

	// AddScore atomically increments a player's game score
	AddScore(ctx context.Context, input *AddScoreInput) error
}
