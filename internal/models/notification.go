package models

import (
	"time"
)

// NotificationType represents the kind of notification
type NotificationType string

const (
	// NotificationTypeGameStarted tells a player a game began in their group
	NotificationTypeGameStarted NotificationType = "game_started"

	// NotificationTypeVoteNeeded asks a player to judge a submission
	NotificationTypeVoteNeeded NotificationType = "vote_needed"

	// NotificationTypeGameInvite invites a player into a group's game
	NotificationTypeGameInvite NotificationType = "game_invite"
)

// Notification is a fire-and-forget message delivered to one user.
// The core never awaits delivery confirmation.
type Notification struct {
	// ID is the unique identifier for the notification
	ID string

	// UserID is the recipient
	UserID string

	// Type is the kind of notification
	Type NotificationType

	// Title is the short headline
	Title string

	// Message is the body text
	Message string

	// Data carries structured payload for the client (game id, submission id)
	Data map[string]string

	// Read indicates the recipient has seen the notification
	Read bool

	// CreatedAt is when the notification was created
	CreatedAt time.Time
}
