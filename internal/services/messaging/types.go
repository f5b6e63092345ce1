package messaging

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Seed for the variant picker; zero seeds from the wall clock
	Seed int64
}

// GetPlayerJoinedMessageInput contains parameters for a join announcement
type GetPlayerJoinedMessageInput struct {
	PlayerName string
}

// GetPlayerJoinedMessageOutput contains the join announcement
type GetPlayerJoinedMessageOutput struct {
	Message string
}

// GetGameStartedMessageInput contains parameters for a start announcement
type GetGameStartedMessageInput struct {
	PlayerCount int
}

// GetGameStartedMessageOutput contains the start announcement
type GetGameStartedMessageOutput struct {
	Message string
}

// GetHandStartedMessageInput contains parameters for a new-hand announcement
type GetHandStartedMessageInput struct {
	HandNumber  int
	PenaltyOnly bool
}

// GetHandStartedMessageOutput contains the new-hand announcement
type GetHandStartedMessageOutput struct {
	Message string
}

// GetCardPlayedMessageInput contains parameters for a played-card announcement
type GetCardPlayedMessageInput struct {
	PlayerName string
	CardTitle  string
}

// GetCardPlayedMessageOutput contains the played-card announcement
type GetCardPlayedMessageOutput struct {
	Message string
}

// GetSubmissionApprovedMessageInput contains parameters for an approval
// announcement
type GetSubmissionApprovedMessageInput struct {
	PlayerName string
	Points     int
}

// GetSubmissionApprovedMessageOutput contains the approval announcement
type GetSubmissionApprovedMessageOutput struct {
	Message string
}

// GetSubmissionRejectedMessageInput contains parameters for a rejection
// announcement
type GetSubmissionRejectedMessageInput struct {
	PlayerName string
}

// GetSubmissionRejectedMessageOutput contains the rejection announcement
type GetSubmissionRejectedMessageOutput struct {
	Message string
}

// GetPenaltyMessageInput contains parameters for a penalty announcement
type GetPenaltyMessageInput struct {
	PlayerName string
	CardTitle  string
	Reason     models.PenaltyReason
}

// GetPenaltyMessageOutput contains the penalty announcement
type GetPenaltyMessageOutput struct {
	Message string
}

// GetGameFinishedMessageInput contains parameters for the final announcement
type GetGameFinishedMessageInput struct {
	WinnerNames []string
	TopScore    int
}

// GetGameFinishedMessageOutput contains the final announcement
type GetGameFinishedMessageOutput struct {
	Message string
}
