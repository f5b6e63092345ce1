package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/nawal123158-wq/kartlichallenge/internal/services/messaging Service

// Service renders the announcement text the engine drops into game chat
type Service interface {
	// GetPlayerJoinedMessage returns a message for a player joining a game
	GetPlayerJoinedMessage(ctx context.Context, input *GetPlayerJoinedMessageInput) (*GetPlayerJoinedMessageOutput, error)

	// GetGameStartedMessage returns a message for a game starting
	GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error)

	// GetHandStartedMessage returns a message for a new hand beginning
	GetHandStartedMessage(ctx context.Context, input *GetHandStartedMessageInput) (*GetHandStartedMessageOutput, error)

	// GetCardPlayedMessage returns a message for a played card awaiting votes
	GetCardPlayedMessage(ctx context.Context, input *GetCardPlayedMessageInput) (*GetCardPlayedMessageOutput, error)

	// GetSubmissionApprovedMessage returns a message for an approved submission
	GetSubmissionApprovedMessage(ctx context.Context, input *GetSubmissionApprovedMessageInput) (*GetSubmissionApprovedMessageOutput, error)

	// GetSubmissionRejectedMessage returns a message for a rejected submission
	GetSubmissionRejectedMessage(ctx context.Context, input *GetSubmissionRejectedMessageInput) (*GetSubmissionRejectedMessageOutput, error)

	// GetPenaltyMessage returns a message for an assigned penalty card
	GetPenaltyMessage(ctx context.Context, input *GetPenaltyMessageInput) (*GetPenaltyMessageOutput, error)

	// GetGameFinishedMessage returns the final standings message
	GetGameFinishedMessage(ctx context.Context, input *GetGameFinishedMessageInput) (*GetGameFinishedMessageOutput, error)
}
