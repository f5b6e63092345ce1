package notification

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// AddNotificationInput is the input for storing a notification
type AddNotificationInput struct {
	// Notification is the notification to store
	Notification *models.Notification
}

// ListByUserInput is the input for listing a user's notifications
type ListByUserInput struct {
	// UserID is the recipient to list for
	UserID string

	// UnreadOnly filters out already-read notifications
	UnreadOnly bool
}

// ListByUserOutput is the output from listing a user's notifications
type ListByUserOutput struct {
	// Notifications newest first
	Notifications []*models.Notification
}

// MarkReadInput is the input for flagging a notification as seen
type MarkReadInput struct {
	// UserID is the recipient the notification belongs to
	UserID string

	// NotificationID is the notification to flag
	NotificationID string
}
