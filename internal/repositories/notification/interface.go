package notification

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nawal123158-wq/kartlichallenge/internal/repositories/notification Repository

// Repository defines the interface for per-user notification operations
type Repository interface {
	// AddNotification stores a notification for a user
	AddNotification(ctx context.Context, input *AddNotificationInput) error

	// ListByUser retrieves a user's notifications, newest first
	ListByUser(ctx context.Context, input *ListByUserInput) (*ListByUserOutput, error)

	// MarkRead flags a user's notification as seen
	MarkRead(ctx context.Context, input *MarkReadInput) error
}
