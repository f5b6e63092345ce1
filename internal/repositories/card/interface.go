package card

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nawal123158-wq/kartlichallenge/internal/repositories/card Repository

import (
	"context"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// Repository defines the interface for card catalog persistence
type Repository interface {
	// SeedCatalog upserts catalog cards keyed by (category, title).
	// Calling it repeatedly never duplicates cards.
	SeedCatalog(ctx context.Context, input *SeedCatalogInput) error

	// RemoveCards deletes catalog cards by (category, title)
	RemoveCards(ctx context.Context, input *RemoveCardsInput) error

	// GetCard retrieves a card by ID
	GetCard(ctx context.Context, input *GetCardInput) (*models.Card, error)

	// GetCards retrieves multiple cards by ID, skipping missing ones
	GetCards(ctx context.Context, input *GetCardsInput) (*GetCardsOutput, error)

	// ListByCategories returns the full pool tagged with any of the categories
	ListByCategories(ctx context.Context, input *ListByCategoriesInput) (*ListByCategoriesOutput, error)

	// GetRandomCard returns one card drawn uniformly from a category
	GetRandomCard(ctx context.Context, input *GetRandomCardInput) (*models.Card, error)
}
