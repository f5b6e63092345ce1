package hand_card

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nawal123158-wq/kartlichallenge/internal/repositories/hand_card Repository

import (
	"context"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// Repository defines the interface for dealt-card persistence.
//
// Hand cards are scoped to one (game, hand, player) and are never reused
// across hands. Status transitions out of in_hand are conditional writes;
// a card can only leave in_hand once.
type Repository interface {
	// DealCards stores a batch of freshly dealt cards
	DealCards(ctx context.Context, input *DealCardsInput) error

	// HasCards reports whether any cards were already dealt for a hand;
	// used as the dealing idempotency guard
	HasCards(ctx context.Context, input *HasCardsInput) (*HasCardsOutput, error)

	// CountInHand counts cards still in_hand for a hand across all players
	CountInHand(ctx context.Context, input *CountInHandInput) (*CountInHandOutput, error)

	// ListForPlayer retrieves a player's cards for a hand
	ListForPlayer(ctx context.Context, input *ListForPlayerInput) (*ListForPlayerOutput, error)

	// FindInHand finds a player's in_hand card by catalog card ID
	FindInHand(ctx context.Context, input *FindInHandInput) (*models.HandCard, error)

	// MarkStatus transitions a card out of in_hand. Marked=false when the
	// card already left in_hand.
	MarkStatus(ctx context.Context, input *MarkStatusInput) (*MarkStatusOutput, error)

	// DiscardRemaining discards every other in_hand card a player holds for
	// a hand; a player commits to exactly one outcome per hand
	DiscardRemaining(ctx context.Context, input *DiscardRemainingInput) error

	// SetSelected pins one in_hand card as the only playable one,
	// unselecting the player's other cards
	SetSelected(ctx context.Context, input *SetSelectedInput) error

	// DeleteCard removes a dealt card entirely (swap replaces it)
	DeleteCard(ctx context.Context, input *DeleteCardInput) error
}
