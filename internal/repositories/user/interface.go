package user

import (
	"context"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nawal123158-wq/kartlichallenge/internal/repositories/user Repository

// Repository defines the interface for user identity and session operations
type Repository interface {
	// SaveUser upserts a user profile
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// AddScores increments a user's weekly and total scores by the same delta
	AddScores(ctx context.Context, input *AddScoresInput) error

	// CreateSession stores a session token for a user
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetUserBySession resolves a session token to its user
	GetUserBySession(ctx context.Context, input *GetUserBySessionInput) (*models.User, error)
}
