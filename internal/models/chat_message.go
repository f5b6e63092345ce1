package models

import (
	"time"
)

// MessageType represents the kind of chat message
type MessageType string

const (
	// MessageTypeText is a regular player message
	MessageTypeText MessageType = "text"

	// MessageTypeSubmission announces a played card and links the submission
	MessageTypeSubmission MessageType = "submission"

	// MessageTypeSystem is an engine announcement (hand changes, vote results)
	MessageTypeSystem MessageType = "system"
)

// ChatMessage represents one entry in a game's append-only chat log
type ChatMessage struct {
	// ID is the unique identifier for the message
	ID string

	// GameID is the game the message belongs to
	GameID string

	// UserID is the author (or the acting player for system messages)
	UserID string

	// Content is the message text
	Content string

	// Type is the kind of message
	Type MessageType

	// SubmissionID links submission announcements to their submission
	SubmissionID string

	// CreatedAt is when the message was written
	CreatedAt time.Time
}
