package chat

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// AddMessageInput is the input for appending a chat message
type AddMessageInput struct {
	// Message is the message to append
	Message *models.ChatMessage
}

// ListByGameInput is the input for listing a game's chat log
type ListByGameInput struct {
	// GameID is the game to list for
	GameID string

	// Limit caps how many of the most recent messages to return.
	// Zero means no cap.
	Limit int
}

// ListByGameOutput is the output from listing a game's chat log
type ListByGameOutput struct {
	// Messages in chronological order
	Messages []*models.ChatMessage
}
