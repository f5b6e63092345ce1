package submission

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/nawal123158-wq/kartlichallenge/internal/repositories/submission Repository

import (
	"context"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// Repository defines the interface for submission and vote persistence.
//
// The pending -> approved|rejected transition is a compare-and-set: of two
// racing resolvers only one observes Resolved=true, so points and penalties
// are awarded exactly once. Votes are recorded at most once per voter per
// submission.
type Repository interface {
	// CreateSubmission stores a new pending submission
	CreateSubmission(ctx context.Context, input *CreateSubmissionInput) error

	// GetSubmission retrieves a submission by ID
	GetSubmission(ctx context.Context, input *GetSubmissionInput) (*models.Submission, error)

	// ListPending retrieves a game's pending submissions
	ListPending(ctx context.Context, input *ListPendingInput) (*ListPendingOutput, error)

	// CountPending counts a hand's pending submissions
	CountPending(ctx context.Context, input *CountPendingInput) (*CountPendingOutput, error)

	// AddVote records a vote and bumps the matching counter.
	// Recorded=false when the voter already voted on the submission.
	AddVote(ctx context.Context, input *AddVoteInput) (*AddVoteOutput, error)

	// GetVoterType returns the vote a voter cast on a submission, or ""
	GetVoterType(ctx context.Context, input *GetVoterTypeInput) (*GetVoterTypeOutput, error)

	// ResolveSubmission conditionally transitions pending -> Status.
	// Resolved=false when the submission already left pending.
	ResolveSubmission(ctx context.Context, input *ResolveSubmissionInput) (*ResolveSubmissionOutput, error)
}
