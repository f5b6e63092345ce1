package chat

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nawal123158-wq/kartlichallenge/internal/repositories/chat Repository

// Repository defines the interface for game chat log operations
type Repository interface {
	// AddMessage appends a message to a game's chat log
	AddMessage(ctx context.Context, input *AddMessageInput) error

	// ListByGame retrieves a game's most recent messages in chronological order
	ListByGame(ctx context.Context, input *ListByGameInput) (*ListByGameOutput, error)
}
