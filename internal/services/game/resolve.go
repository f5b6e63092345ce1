package game

import (
	"context"
	"errors"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
	cardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/card"
	playerRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/player"
	submissionRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/submission"
	userRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/user"
	"github.com/nawal123158-wq/kartlichallenge/internal/services/messaging"
)

// CastVote records a vote and synchronously resolves the submission so the
// caller learns the immediate outcome
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	if input.Type != models.VoteTypeApprove && input.Type != models.VoteTypeReject {
		return nil, ErrInvalidVoteType
	}

	sub, err := s.getSubmission(ctx, input.SubmissionID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, sub.GameID, input.UserID); err != nil {
		return nil, err
	}

	if sub.UserID == input.UserID {
		return nil, ErrOwnSubmission
	}

	if sub.Status != models.SubmissionStatusPending {
		return nil, ErrSubmissionNotPending
	}

	recorded, err := s.config.SubmissionRepo.AddVote(ctx, &submissionRepo.AddVoteInput{
		Vote: &models.Vote{
			ID:           s.config.UUIDGenerator.NewUUID(),
			SubmissionID: sub.ID,
			VoterID:      input.UserID,
			Type:         input.Type,
			CreatedAt:    s.config.Clock.Now(),
		},
	})
	if err != nil {
		return nil, err
	}

	if !recorded.Recorded {
		return nil, ErrAlreadyVoted
	}

	status, err := s.resolveSubmission(ctx, sub.ID)
	if err != nil {
		return nil, err
	}

	return &CastVoteOutput{Status: status}, nil
}

// GetSubmissions lists a game's pending submissions after lazily resolving
// any that timed out. Timeout resolution has no background driver; it only
// happens when a submission is observed here or through a vote.
func (s *service) GetSubmissions(ctx context.Context, input *GetSubmissionsInput) (*GetSubmissionsOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireGroupMember(ctx, game.GroupID, input.UserID); err != nil {
		return nil, err
	}

	pending, err := s.config.SubmissionRepo.ListPending(ctx, &submissionRepo.ListPendingInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	views := make([]*SubmissionView, 0, len(pending.Submissions))
	for _, sub := range pending.Submissions {
		status, err := s.resolveSubmission(ctx, sub.ID)
		if err != nil {
			return nil, err
		}

		if status != models.SubmissionStatusPending {
			continue
		}

		view := &SubmissionView{Submission: sub}

		card, err := s.config.CardRepo.GetCard(ctx, &cardRepo.GetCardInput{CardID: sub.CardID})
		if err == nil {
			view.Card = card
		}

		voted, err := s.config.SubmissionRepo.GetVoterType(ctx, &submissionRepo.GetVoterTypeInput{
			SubmissionID: sub.ID,
			VoterID:      input.UserID,
		})
		if err != nil {
			return nil, err
		}
		view.YourVote = voted.Type

		views = append(views, view)
	}

	return &GetSubmissionsOutput{Submissions: views}, nil
}

// resolveSubmission runs the consensus decision procedure and applies the
// outcome at most once.
//
// With eligible = playerCount-1 voters, the first matching rule wins:
// approve majority, reject majority, everyone-voted tiebreak, then the
// timeout rules (zero votes rejects, enough votes compare, too few stay
// pending). Two racers may both compute a terminal outcome; the
// compare-and-set on the submission status picks the single winner and the
// loser returns the stored result untouched.
func (s *service) resolveSubmission(ctx context.Context, submissionID string) (models.SubmissionStatus, error) {
	sub, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return "", err
	}

	if sub.Status != models.SubmissionStatusPending {
		return sub.Status, nil
	}

	count, err := s.config.PlayerRepo.CountPlayers(ctx, &playerRepo.CountPlayersInput{
		GameID: sub.GameID,
	})
	if err != nil {
		return "", err
	}

	eligible := count.Count - 1
	if eligible < 0 {
		eligible = 0
	}

	votesApprove := sub.VotesApprove
	votesReject := sub.VotesReject
	votesTotal := votesApprove + votesReject

	minRequired := 0
	majorityNeeded := 1
	if eligible > 0 {
		minRequired = s.config.MinVotesRequired
		if eligible < minRequired {
			minRequired = eligible
		}
		majorityNeeded = eligible/2 + 1
	}

	timedOut := s.config.Clock.Now().Sub(sub.CreatedAt) >= s.config.VoteTimeout

	decision := models.SubmissionStatusPending
	switch {
	case votesApprove >= majorityNeeded:
		decision = models.SubmissionStatusApproved

	case votesReject >= majorityNeeded:
		decision = models.SubmissionStatusRejected

	case eligible > 0 && votesTotal >= eligible:
		// Everyone voted without reaching a majority; a tie rejects
		if votesApprove > votesReject {
			decision = models.SubmissionStatusApproved
		} else {
			decision = models.SubmissionStatusRejected
		}

	case timedOut && votesTotal == 0:
		decision = models.SubmissionStatusRejected

	case timedOut && votesTotal >= minRequired:
		if votesApprove > votesReject {
			decision = models.SubmissionStatusApproved
		} else {
			decision = models.SubmissionStatusRejected
		}
	}

	if decision == models.SubmissionStatusPending {
		return models.SubmissionStatusPending, nil
	}

	resolved, err := s.config.SubmissionRepo.ResolveSubmission(ctx, &submissionRepo.ResolveSubmissionInput{
		SubmissionID: sub.ID,
		Status:       decision,
	})
	if err != nil {
		return "", err
	}

	if !resolved.Resolved {
		// Lost the race; report whatever the winner stored
		settled, err := s.getSubmission(ctx, sub.ID)
		if err != nil {
			return "", err
		}
		return settled.Status, nil
	}

	if decision == models.SubmissionStatusApproved {
		err = s.applyApproval(ctx, sub)
	} else {
		err = s.applyRejection(ctx, sub)
	}
	if err != nil {
		return "", err
	}

	s.publish(&Event{
		Type:         EventSubmissionResolved,
		GameID:       sub.GameID,
		UserID:       sub.UserID,
		SubmissionID: sub.ID,
		HandNumber:   sub.HandNumber,
		Message:      string(decision),
	})

	if err := s.checkHandCompletion(ctx, sub.GameID); err != nil {
		return "", err
	}

	return decision, nil
}

// applyApproval credits the submitter's scores and announces the result
func (s *service) applyApproval(ctx context.Context, sub *models.Submission) error {
	points := 1
	card, err := s.config.CardRepo.GetCard(ctx, &cardRepo.GetCardInput{CardID: sub.CardID})
	if err == nil {
		points = card.Points
	}

	err = s.config.PlayerRepo.AddScore(ctx, &playerRepo.AddScoreInput{
		GameID: sub.GameID,
		UserID: sub.UserID,
		Points: points,
	})
	if err != nil {
		return err
	}

	err = s.config.UserRepo.AddScores(ctx, &userRepo.AddScoresInput{
		UserID: sub.UserID,
		Points: points,
	})
	if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
		return err
	}

	msg, err := s.config.Messaging.GetSubmissionApprovedMessage(ctx, &messaging.GetSubmissionApprovedMessageInput{
		PlayerName: s.displayName(ctx, sub.UserID),
		Points:     points,
	})
	if err == nil {
		s.systemMessage(ctx, sub.GameID, sub.UserID, msg.Message, sub.ID)
	}

	return nil
}

// applyRejection penalizes the submitter and announces the result
func (s *service) applyRejection(ctx context.Context, sub *models.Submission) error {
	game, err := s.getGame(ctx, sub.GameID)
	if err != nil {
		return err
	}

	if _, err := s.assignPenalty(ctx, game, sub.UserID, models.PenaltyReasonRejected); err != nil {
		return err
	}

	msg, err := s.config.Messaging.GetSubmissionRejectedMessage(ctx, &messaging.GetSubmissionRejectedMessageInput{
		PlayerName: s.displayName(ctx, sub.UserID),
	})
	if err == nil {
		s.systemMessage(ctx, sub.GameID, sub.UserID, msg.Message, sub.ID)
	}

	return nil
}

// getSubmission loads a submission, mapping the repository sentinel
func (s *service) getSubmission(ctx context.Context, submissionID string) (*models.Submission, error) {
	sub, err := s.config.SubmissionRepo.GetSubmission(ctx, &submissionRepo.GetSubmissionInput{
		SubmissionID: submissionID,
	})
	if err != nil {
		if errors.Is(err, submissionRepo.ErrSubmissionNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	return sub, nil
}
