package hand_card

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// DealCardsInput contains the freshly dealt cards to store
type DealCardsInput struct {
	Cards []*models.HandCard
}

// HasCardsInput contains parameters for the dealing idempotency check
type HasCardsInput struct {
	GameID     string
	HandNumber int
}

// HasCardsOutput reports whether cards exist for the hand
type HasCardsOutput struct {
	HasCards bool
}

// CountInHandInput contains parameters for counting in_hand cards
type CountInHandInput struct {
	GameID     string
	HandNumber int
}

// CountInHandOutput contains the in_hand count
type CountInHandOutput struct {
	Count int
}

// ListForPlayerInput contains parameters for listing a player's cards.
// InHandOnly restricts the result to playable cards.
type ListForPlayerInput struct {
	GameID     string
	HandNumber int
	UserID     string
	InHandOnly bool
}

// ListForPlayerOutput contains the player's cards
type ListForPlayerOutput struct {
	Cards []*models.HandCard
}

// FindInHandInput contains parameters for locating an in_hand card
type FindInHandInput struct {
	GameID     string
	HandNumber int
	UserID     string
	CardID     string
}

// MarkStatusInput contains parameters for a status transition
type MarkStatusInput struct {
	HandCardID string
	Status     models.HandCardStatus
}

// MarkStatusOutput reports whether the transition happened
type MarkStatusOutput struct {
	Marked bool
}

// DiscardRemainingInput contains parameters for bulk-discarding a player's
// other in_hand cards
type DiscardRemainingInput struct {
	GameID            string
	HandNumber        int
	UserID            string
	ExcludeHandCardID string
}

// SetSelectedInput contains parameters for pinning a card
type SetSelectedInput struct {
	GameID     string
	HandNumber int
	UserID     string
	HandCardID string
}

// DeleteCardInput contains parameters for removing a dealt card
type DeleteCardInput struct {
	HandCardID string
	GameID     string
	HandNumber int
	UserID     string
}
