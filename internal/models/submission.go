package models

import (
	"time"
)

// SubmissionStatus represents the state of a submission
type SubmissionStatus string

const (
	// SubmissionStatusPending indicates peer votes are still being collected
	SubmissionStatusPending SubmissionStatus = "pending"

	// SubmissionStatusApproved indicates the submission was approved
	SubmissionStatusApproved SubmissionStatus = "approved"

	// SubmissionStatusRejected indicates the submission was rejected
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// Submission represents a played card awaiting peer judgment
type Submission struct {
	// ID is the unique identifier for the submission
	ID string

	// GameID is the game the submission belongs to
	GameID string

	// HandNumber is the hand the card was played in
	HandNumber int

	// UserID is the submitting player
	UserID string

	// CardID references the played catalog card
	CardID string

	// PhotoBase64 is the photographic proof supplied by the player
	PhotoBase64 string

	// Note is an optional comment from the player
	Note string

	// Status is pending until the resolver reaches a terminal decision
	Status SubmissionStatus

	// VotesApprove counts approve votes received so far
	VotesApprove int

	// VotesReject counts reject votes received so far
	VotesReject int

	// CreatedAt is when the card was played; vote timeouts run from here
	CreatedAt time.Time
}
