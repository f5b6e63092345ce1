package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/nawal123158-wq/kartlichallenge/internal/services/game Service

// Service defines the interface for game operations
type Service interface {
	// CreateGame creates a new waiting game in a group and joins the creator
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to a game, leaving any other active game in
	// the same group
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// StartGame explicitly starts a waiting game
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// GetGame fetches a game's state for a participant
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetMyCards fetches the caller's current hand
	GetMyCards(ctx context.Context, input *GetMyCardsInput) (*GetMyCardsOutput, error)

	// SelectCard pins one in_hand card as the only playable one
	SelectCard(ctx context.Context, input *SelectCardInput) (*SelectCardOutput, error)

	// PlayCard acts on a card: play submits it for judgment, pass spends
	// the one-time pass, refuse takes an immediate penalty
	PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error)

	// SwapCard spends the one-time swap to replace an in_hand card
	SwapCard(ctx context.Context, input *SwapCardInput) (*SwapCardOutput, error)

	// GetSubmissions lists a game's pending submissions after lazily
	// resolving any that timed out
	GetSubmissions(ctx context.Context, input *GetSubmissionsInput) (*GetSubmissionsOutput, error)

	// CastVote records a vote and synchronously resolves the submission
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// GetPenalties lists a game's penalty log
	GetPenalties(ctx context.Context, input *GetPenaltiesInput) (*GetPenaltiesOutput, error)

	// PostChatMessage appends a player message to a game's chat log
	PostChatMessage(ctx context.Context, input *PostChatMessageInput) (*PostChatMessageOutput, error)

	// GetChatMessages reads a game's chat log
	GetChatMessages(ctx context.Context, input *GetChatMessagesInput) (*GetChatMessagesOutput, error)

	// GetNotifications lists the caller's notifications
	GetNotifications(ctx context.Context, input *GetNotificationsInput) (*GetNotificationsOutput, error)

	// MarkNotificationRead flags one of the caller's notifications as seen
	MarkNotificationRead(ctx context.Context, input *MarkNotificationReadInput) error
}
