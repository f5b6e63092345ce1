package submission

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

const (
	// Key prefixes for Redis
	submissionKeyPrefix      = "submission:"
	gameSubmissionsKeyPrefix = "game_submissions:"
	voterTypesKeyPrefix      = "submission_voters:"
	voteKeyPrefix            = "vote:"
)

// ErrSubmissionNotFound is returned when a submission is not found
var ErrSubmissionNotFound = errors.New("submission not found")

// resolveScript performs the single pending -> terminal transition
var resolveScript = redis.NewScript(`
if redis.call('HGET', KEYS[1], 'status') ~= 'pending' then
  return 0
end
redis.call('HSET', KEYS[1], 'status', ARGV[1])
return 1
`)

// Config holds configuration for the Redis submission repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed submission repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func submissionKey(submissionID string) string {
	return submissionKeyPrefix + submissionID
}

func gameSubmissionsKey(gameID string) string {
	return gameSubmissionsKeyPrefix + gameID
}

func voterTypesKey(submissionID string) string {
	return voterTypesKeyPrefix + submissionID
}

func fieldsToSubmission(fields map[string]string) *models.Submission {
	sub := &models.Submission{
		ID:          fields["id"],
		GameID:      fields["game_id"],
		UserID:      fields["user_id"],
		CardID:      fields["card_id"],
		PhotoBase64: fields["photo"],
		Note:        fields["note"],
		Status:      models.SubmissionStatus(fields["status"]),
	}

	sub.HandNumber, _ = strconv.Atoi(fields["hand_number"])
	sub.VotesApprove, _ = strconv.Atoi(fields["votes_approve"])
	sub.VotesReject, _ = strconv.Atoi(fields["votes_reject"])
	if raw := fields["created_at"]; raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			sub.CreatedAt = t
		}
	}

	return sub
}

// CreateSubmission stores a new pending submission
func (r *redisRepository) CreateSubmission(ctx context.Context, input *CreateSubmissionInput) error {
	if input == nil || input.Submission == nil {
		return errors.New("input and submission cannot be nil")
	}

	sub := input.Submission
	if sub.ID == "" || sub.GameID == "" || sub.UserID == "" {
		return errors.New("submission ID, game ID and user ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, submissionKey(sub.ID), map[string]interface{}{
		"id":            sub.ID,
		"game_id":       sub.GameID,
		"hand_number":   strconv.Itoa(sub.HandNumber),
		"user_id":       sub.UserID,
		"card_id":       sub.CardID,
		"photo":         sub.PhotoBase64,
		"note":          sub.Note,
		"status":        string(sub.Status),
		"votes_approve": strconv.Itoa(sub.VotesApprove),
		"votes_reject":  strconv.Itoa(sub.VotesReject),
		"created_at":    sub.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	pipe.SAdd(ctx, gameSubmissionsKey(sub.GameID), sub.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// GetSubmission retrieves a submission by ID
func (r *redisRepository) GetSubmission(ctx context.Context, input *GetSubmissionInput) (*models.Submission, error) {
	if input == nil || input.SubmissionID == "" {
		return nil, errors.New("input and submission ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, submissionKey(input.SubmissionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrSubmissionNotFound
	}

	return fieldsToSubmission(fields), nil
}

// ListPending retrieves a game's pending submissions
func (r *redisRepository) ListPending(ctx context.Context, input *ListPendingInput) (*ListPendingOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, gameSubmissionsKey(input.GameID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	pending := make([]*models.Submission, 0, len(ids))
	for _, id := range ids {
		sub, err := r.GetSubmission(ctx, &GetSubmissionInput{SubmissionID: id})
		if err != nil {
			if errors.Is(err, ErrSubmissionNotFound) {
				continue
			}
			return nil, err
		}

		if sub.Status == models.SubmissionStatusPending {
			pending = append(pending, sub)
		}
	}

	return &ListPendingOutput{Submissions: pending}, nil
}

// CountPending counts a hand's pending submissions
func (r *redisRepository) CountPending(ctx context.Context, input *CountPendingInput) (*CountPendingOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	listOutput, err := r.ListPending(ctx, &ListPendingInput{GameID: input.GameID})
	if err != nil {
		return nil, err
	}

	count := 0
	for _, sub := range listOutput.Submissions {
		if sub.HandNumber == input.HandNumber {
			count++
		}
	}

	return &CountPendingOutput{Count: count}, nil
}

// AddVote records a vote and bumps the matching counter
func (r *redisRepository) AddVote(ctx context.Context, input *AddVoteInput) (*AddVoteOutput, error) {
	if input == nil || input.Vote == nil {
		return nil, errors.New("input and vote cannot be nil")
	}

	vote := input.Vote
	if vote.ID == "" || vote.SubmissionID == "" || vote.VoterID == "" {
		return nil, errors.New("vote ID, submission ID and voter ID cannot be empty")
	}

	// The voter-type hash is the at-most-once guard; HSETNX loses for a
	// voter that already has a field
	recorded, err := r.client.HSetNX(ctx, voterTypesKey(vote.SubmissionID), vote.VoterID, string(vote.Type)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to record voter: %w", err)
	}

	if !recorded {
		return &AddVoteOutput{Recorded: false}, nil
	}

	counterField := "votes_approve"
	if vote.Type == models.VoteTypeReject {
		counterField = "votes_reject"
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, voteKeyPrefix+vote.ID, map[string]interface{}{
		"id":            vote.ID,
		"submission_id": vote.SubmissionID,
		"voter_id":      vote.VoterID,
		"vote_type":     string(vote.Type),
		"created_at":    vote.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	pipe.HIncrBy(ctx, submissionKey(vote.SubmissionID), counterField, 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save vote: %w", err)
	}

	return &AddVoteOutput{Recorded: true}, nil
}

// GetVoterType returns the vote a voter cast on a submission, or ""
func (r *redisRepository) GetVoterType(ctx context.Context, input *GetVoterTypeInput) (*GetVoterTypeOutput, error) {
	if input == nil || input.SubmissionID == "" || input.VoterID == "" {
		return nil, errors.New("input, submission ID and voter ID cannot be empty")
	}

	voteType, err := r.client.HGet(ctx, voterTypesKey(input.SubmissionID), input.VoterID).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetVoterTypeOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get voter type: %w", err)
	}

	return &GetVoterTypeOutput{Type: models.VoteType(voteType)}, nil
}

// ResolveSubmission conditionally transitions pending -> Status
func (r *redisRepository) ResolveSubmission(ctx context.Context, input *ResolveSubmissionInput) (*ResolveSubmissionOutput, error) {
	if input == nil || input.SubmissionID == "" {
		return nil, errors.New("input and submission ID cannot be empty")
	}

	if input.Status != models.SubmissionStatusApproved && input.Status != models.SubmissionStatusRejected {
		return nil, fmt.Errorf("invalid terminal status %q", input.Status)
	}

	resolved, err := resolveScript.Run(ctx, r.client, []string{submissionKey(input.SubmissionID)}, string(input.Status)).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve submission: %w", err)
	}

	return &ResolveSubmissionOutput{Resolved: resolved == 1}, nil
}
