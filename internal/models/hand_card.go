package models

// HandCardStatus represents the lifecycle state of a dealt card
type HandCardStatus string

const (
	// HandCardStatusInHand indicates the card is still playable
	HandCardStatusInHand HandCardStatus = "in_hand"

	// HandCardStatusPlayed indicates the card was played as a submission
	HandCardStatusPlayed HandCardStatus = "played"

	// HandCardStatusDiscarded indicates the card was discarded (refuse, or
	// leftover after the player committed to another card)
	HandCardStatusDiscarded HandCardStatus = "discarded"

	// HandCardStatusPassed indicates the card was passed with the one-time pass
	HandCardStatusPassed HandCardStatus = "passed"
)

// HandCard represents one card instance dealt to a player for one hand.
// Instances are never reused across hands.
type HandCard struct {
	// ID is the unique identifier for this dealt card
	ID string

	// GameID is the game the card was dealt in
	GameID string

	// HandNumber is the hand the card was dealt for (1..MaxHands)
	HandNumber int

	// UserID is the player holding the card
	UserID string

	// CardID references the catalog card
	CardID string

	// Status is the lifecycle state of the card
	Status HandCardStatus

	// Selected pins this card as the only playable one for the hand
	Selected bool
}
