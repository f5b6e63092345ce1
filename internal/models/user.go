package models

import (
	"time"
)

// User represents a player identity. Credentials are managed elsewhere;
// the core only reads identities and writes score/coin balances.
type User struct {
	// ID is the stable user identifier
	ID string

	// Name is the display name
	Name string

	// Picture is an optional avatar URL
	Picture string

	// WeeklyScore is the rolling leaderboard score
	WeeklyScore int

	// TotalScore is the lifetime score
	TotalScore int
}

// Session maps a session token to a user for request authentication
type Session struct {
	// Token is the opaque session credential
	Token string

	// UserID is the authenticated user
	UserID string

	// ExpiresAt is when the session stops being valid
	ExpiresAt time.Time
}
