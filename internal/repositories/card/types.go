package card

import "github.com/nawal123158-wq/kartlichallenge/internal/models"

// SeedCard describes one card to upsert into the catalog
type SeedCard struct {
	Category         models.CardCategory
	Title            string
	Description      string
	Difficulty       int
	Points           int
	TimeLimitSeconds int
}

// CardKey identifies a catalog card by its natural key
type CardKey struct {
	Category models.CardCategory
	Title    string
}

// SeedCatalogInput contains parameters for seeding the catalog
type SeedCatalogInput struct {
	Cards []SeedCard
}

// RemoveCardsInput contains parameters for removing deprecated cards
type RemoveCardsInput struct {
	Keys []CardKey
}

// GetCardInput contains parameters for retrieving a card
type GetCardInput struct {
	CardID string
}

// GetCardsInput contains parameters for retrieving multiple cards
type GetCardsInput struct {
	CardIDs []string
}

// GetCardsOutput contains the retrieved cards
type GetCardsOutput struct {
	Cards []*models.Card
}

// ListByCategoriesInput contains parameters for listing a card pool
type ListByCategoriesInput struct {
	Categories []models.CardCategory
}

// ListByCategoriesOutput contains the card pool
type ListByCategoriesOutput struct {
	Cards []*models.Card
}

// GetRandomCardInput contains parameters for a uniform single-card draw
type GetRandomCardInput struct {
	Category models.CardCategory
}
