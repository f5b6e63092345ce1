package models

import (
	"time"
)

// VoteType represents a voter's judgment
type VoteType string

const (
	// VoteTypeApprove approves the submission
	VoteTypeApprove VoteType = "approve"

	// VoteTypeReject rejects the submission
	VoteTypeReject VoteType = "reject"
)

// Vote represents one voter's immutable judgment on one submission.
// At most one vote exists per (submission, voter), and the submitter
// never votes on their own submission.
type Vote struct {
	// ID is the unique identifier for the vote
	ID string

	// SubmissionID is the submission being judged
	SubmissionID string

	// VoterID is the voting player
	VoterID string

	// Type is the judgment cast
	Type VoteType

	// CreatedAt is when the vote was cast
	CreatedAt time.Time
}
