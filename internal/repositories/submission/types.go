package submission

import (
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// CreateSubmissionInput contains the submission to store
type CreateSubmissionInput struct {
	Submission *models.Submission
}

// GetSubmissionInput contains parameters for retrieving a submission
type GetSubmissionInput struct {
	SubmissionID string
}

// ListPendingInput contains parameters for listing pending submissions
type ListPendingInput struct {
	GameID string
}

// ListPendingOutput contains the pending submissions
type ListPendingOutput struct {
	Submissions []*models.Submission
}

// CountPendingInput contains parameters for counting a hand's pending
// submissions
type CountPendingInput struct {
	GameID     string
	HandNumber int
}

// CountPendingOutput contains the pending count
type CountPendingOutput struct {
	Count int
}

// AddVoteInput contains the vote to record
type AddVoteInput struct {
	Vote *models.Vote
}

// AddVoteOutput reports whether the vote was newly recorded
type AddVoteOutput struct {
	Recorded bool
}

// GetVoterTypeInput contains parameters for looking up a voter's vote
type GetVoterTypeInput struct {
	SubmissionID string
	VoterID      string
}

// GetVoterTypeOutput contains the vote type, or "" when the voter has not
// voted
type GetVoterTypeOutput struct {
	Type models.VoteType
}

// ResolveSubmissionInput contains parameters for the terminal transition
type ResolveSubmissionInput struct {
	SubmissionID string
	Status       models.SubmissionStatus
}

// ResolveSubmissionOutput reports whether this call performed the transition
type ResolveSubmissionOutput struct {
	Resolved bool
}
