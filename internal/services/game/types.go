package game

import (
	"time"

	"github.com/nawal123158-wq/kartlichallenge/internal/common/clock"
	commonuuid "github.com/nawal123158-wq/kartlichallenge/internal/common/uuid"
	"github.com/nawal123158-wq/kartlichallenge/internal/deck"
	"github.com/nawal123158-wq/kartlichallenge/internal/models"
	cardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/card"
	chatRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/chat"
	coinRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/coin_ledger"
	gameRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/game"
	groupRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/group"
	handCardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/hand_card"
	notificationRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/notification"
	penaltyRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/penalty"
	playerRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/player"
	submissionRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/submission"
	userRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/user"
	"github.com/nawal123158-wq/kartlichallenge/internal/services/messaging"
)

// EventType identifies a websocket feed event
type EventType string

const (
	// EventPlayerJoined fires when a player joins a game
	EventPlayerJoined EventType = "player_joined"

	// EventGameStarted fires when a game transitions to started
	EventGameStarted EventType = "game_started"

	// EventCardPlayed fires when a play creates a submission
	EventCardPlayed EventType = "card_played"

	// EventSubmissionResolved fires when a submission reaches a terminal state
	EventSubmissionResolved EventType = "submission_resolved"

	// EventHandAdvanced fires when a new hand begins
	EventHandAdvanced EventType = "hand_advanced"

	// EventGameFinished fires when a game finishes
	EventGameFinished EventType = "game_finished"

	// EventChatMessage fires when a chat message is appended
	EventChatMessage EventType = "chat_message"
)

// Event is one entry in a game's live feed
type Event struct {
	Type         EventType `json:"type"`
	GameID       string    `json:"game_id"`
	UserID       string    `json:"user_id,omitempty"`
	SubmissionID string    `json:"submission_id,omitempty"`
	HandNumber   int       `json:"hand_number,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// EventSink receives live feed events. Publishing is fire-and-forget.
type EventSink interface {
	Publish(event *Event)
}

// PlayAction is what a player does with a card on their turn
type PlayAction string

const (
	// PlayActionPlay submits the card for peer judgment
	PlayActionPlay PlayAction = "play"

	// PlayActionPass spends the one-time pass and discards the card
	PlayActionPass PlayAction = "pass"

	// PlayActionRefuse discards the card and takes an immediate penalty
	PlayActionRefuse PlayAction = "refuse"
)

// Config holds the game service's dependencies and tuning knobs
type Config struct {
	// GameRepo persists games
	GameRepo gameRepo.Repository

	// PlayerRepo persists player entries
	PlayerRepo playerRepo.Repository

	// HandCardRepo persists dealt cards
	HandCardRepo handCardRepo.Repository

	// CardRepo reads the card catalog
	CardRepo cardRepo.Repository

	// SubmissionRepo persists submissions and votes
	SubmissionRepo submissionRepo.Repository

	// PenaltyRepo appends the penalty log
	PenaltyRepo penaltyRepo.Repository

	// GroupRepo checks group membership
	GroupRepo groupRepo.Repository

	// ChatRepo appends game chat messages
	ChatRepo chatRepo.Repository

	// NotificationRepo fans out notifications
	NotificationRepo notificationRepo.Repository

	// UserRepo credits weekly/total scores
	UserRepo userRepo.Repository

	// CoinRepo is the reward-currency ledger
	CoinRepo coinRepo.Repository

	// Sampler draws cards for dealing and swapping
	Sampler deck.Sampler

	// Clock supplies the current time
	Clock clock.Clock

	// UUIDGenerator supplies entity IDs
	UUIDGenerator commonuuid.UUID

	// Messaging renders chat announcements
	Messaging messaging.Service

	// Events receives live feed events; nil disables the feed
	Events EventSink

	// MinVotesRequired is the vote floor for timeout resolution
	MinVotesRequired int

	// VoteTimeout is how long a submission collects votes before the
	// timeout rules apply
	VoteTimeout time.Duration

	// HandTime is the per-hand play budget
	HandTime time.Duration

	// CardsPerHand is how many cards each player is dealt
	CardsPerHand int

	// AutoStartPlayers is the join count that auto-starts a game
	AutoStartPlayers int

	// WinBonusCoins is the coin award for the top score
	WinBonusCoins int

	// ParticipationCoins is the coin award for everyone else
	ParticipationCoins int
}

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	GroupID string
	UserID  string
}

// CreateGameOutput contains the created game
type CreateGameOutput struct {
	Game *models.Game
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	GameID string
	UserID string
}

// JoinGameOutput contains the joined game and whether joining started it
type JoinGameOutput struct {
	Game        *models.Game
	AutoStarted bool
}

// StartGameInput contains parameters for explicitly starting a game
type StartGameInput struct {
	GameID string
	UserID string
}

// StartGameOutput contains the started game
type StartGameOutput struct {
	Game *models.Game
}

// PlayerState is one player's public standing in a game
type PlayerState struct {
	UserID   string
	Name     string
	Picture  string
	Score    int
	PassUsed bool
	SwapUsed bool
}

// GetGameInput contains parameters for fetching game state
type GetGameInput struct {
	GameID string
	UserID string
}

// GetGameOutput contains the game and its players
type GetGameOutput struct {
	Game          *models.Game
	Players       []*PlayerState
	CurrentPlayer string
}

// HandCardView is one dealt card joined with its catalog data
type HandCardView struct {
	HandCard *models.HandCard
	Card     *models.Card
}

// GetMyCardsInput contains parameters for fetching the caller's hand
type GetMyCardsInput struct {
	GameID string
	UserID string
}

// GetMyCardsOutput contains the caller's cards and hand context
type GetMyCardsOutput struct {
	Cards         []*HandCardView
	HandNumber    int
	YourTurn      bool
	PassUsed      bool
	SwapUsed      bool
	RemainingTime time.Duration
}

// SelectCardInput contains parameters for pinning a card
type SelectCardInput struct {
	GameID string
	UserID string
	CardID string
}

// SelectCardOutput is the output from pinning a card
type SelectCardOutput struct{}

// PlayCardInput contains parameters for acting on a card
type PlayCardInput struct {
	GameID      string
	UserID      string
	CardID      string
	Action      PlayAction
	PhotoBase64 string
	Note        string
}

// PlayCardOutput contains the action's result
type PlayCardOutput struct {
	// Submission is set when Action was play
	Submission *models.Submission

	// PenaltyCard is set when Action was refuse
	PenaltyCard *models.Card
}

// SwapCardInput contains parameters for the one-time swap
type SwapCardInput struct {
	GameID string
	UserID string
	CardID string
}

// SwapCardOutput contains the replacement card
type SwapCardOutput struct {
	NewCard *HandCardView
}

// SubmissionView is a submission joined with its card and the caller's vote
type SubmissionView struct {
	Submission *models.Submission
	Card       *models.Card
	YourVote   models.VoteType
}

// GetSubmissionsInput contains parameters for listing pending submissions
type GetSubmissionsInput struct {
	GameID string
	UserID string
}

// GetSubmissionsOutput contains the still-pending submissions after lazy
// timeout resolution
type GetSubmissionsOutput struct {
	Submissions []*SubmissionView
}

// CastVoteInput contains parameters for voting on a submission
type CastVoteInput struct {
	SubmissionID string
	UserID       string
	Type         models.VoteType
}

// CastVoteOutput reports the submission's status after the vote resolved
type CastVoteOutput struct {
	Status models.SubmissionStatus
}

// PenaltyView is a penalty record joined with its card
type PenaltyView struct {
	Penalty *models.Penalty
	Card    *models.Card
}

// GetPenaltiesInput contains parameters for listing a game's penalties
type GetPenaltiesInput struct {
	GameID string
	UserID string
}

// GetPenaltiesOutput contains the game's penalty log
type GetPenaltiesOutput struct {
	Penalties []*PenaltyView
}

// PostChatMessageInput contains parameters for sending a chat message
type PostChatMessageInput struct {
	GameID  string
	UserID  string
	Content string
}

// PostChatMessageOutput contains the stored message
type PostChatMessageOutput struct {
	Message *models.ChatMessage
}

// GetChatMessagesInput contains parameters for reading a game's chat log
type GetChatMessagesInput struct {
	GameID string
	UserID string
	Limit  int
}

// GetChatMessagesOutput contains the chat log in chronological order
type GetChatMessagesOutput struct {
	Messages []*models.ChatMessage
}

// GetNotificationsInput contains parameters for listing notifications
type GetNotificationsInput struct {
	UserID     string
	UnreadOnly bool
}

// GetNotificationsOutput contains the caller's notifications, newest first
type GetNotificationsOutput struct {
	Notifications []*models.Notification
}

// MarkNotificationReadInput contains parameters for flagging a notification
type MarkNotificationReadInput struct {
	UserID         string
	NotificationID string
}
