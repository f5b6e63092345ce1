package user

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// SaveUserInput is the input for upserting a user profile
type SaveUserInput struct {
	// User is the profile to save
	User *models.User
}

// GetUserInput is the input for retrieving a user
type GetUserInput struct {
	// UserID is the user to retrieve
	UserID string
}

// AddScoresInput is the input for incrementing a user's scores
type AddScoresInput struct {
	// UserID is the user to credit
	UserID string

	// Points is the delta applied to both weekly and total scores
	Points int
}

// CreateSessionInput is the input for storing a session token
type CreateSessionInput struct {
	// Session is the token-to-user mapping to store
	Session *models.Session
}

// GetUserBySessionInput is the input for resolving a session token
type GetUserBySessionInput struct {
	// Token is the opaque session credential
	Token string
}
