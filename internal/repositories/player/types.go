package player

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// Flag identifies a one-time per-game player flag
type Flag string

const (
	// FlagPass is the one-time pass
	FlagPass Flag = "pass_used"

	// FlagSwap is the one-time swap
	FlagSwap Flag = "swap_used"
)

// CreateEntryInput contains parameters for creating a player entry
type CreateEntryInput struct {
	Entry *models.PlayerEntry
}

// CreateEntryOutput reports whether the entry was newly created
type CreateEntryOutput struct {
	Created bool
}

// GetEntryInput contains parameters for retrieving a player entry
type GetEntryInput struct {
	GameID string
	UserID string
}

// ListEntriesInput contains parameters for listing a game's entries
type ListEntriesInput struct {
	GameID string
}

// ListEntriesOutput contains the game's player entries
type ListEntriesOutput struct {
	Entries []*models.PlayerEntry
}

// CountPlayersInput contains parameters for counting players
type CountPlayersInput struct {
	GameID string
}

// CountPlayersOutput contains the player count
type CountPlayersOutput struct {
	Count int
}

// DeleteEntryInput contains parameters for removing a player entry
type DeleteEntryInput struct {
	GameID string
	UserID string
}

// UseFlagInput contains parameters for consuming a one-time flag
type UseFlagInput struct {
	GameID string
	UserID string
	Flag   Flag
}

// UseFlagOutput reports whether the flag was consumed by this call
type UseFlagOutput struct {
	Used bool
}

// AddScoreInput contains parameters for incrementing a game score
type AddScoreInput struct {
	GameID string
	UserID string
	Points int
}
