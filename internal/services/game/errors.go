package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound         GameError = "game not found"
	ErrSubmissionNotFound   GameError = "submission not found"
	ErrCardNotInHand        GameError = "card not in hand"
	ErrPlayerNotInGame      GameError = "player not in game"
	ErrNotGroupMember       GameError = "player is not a member of the group"
	ErrNotCreator           GameError = "only the creator can start the game"
	ErrOwnSubmission        GameError = "cannot vote on your own submission"
	ErrInvalidGameState     GameError = "invalid game state"
	ErrNotYourTurn          GameError = "not this player's turn"
	ErrHandTimeExpired      GameError = "hand time budget expired"
	ErrSubmissionNotPending GameError = "submission is no longer pending"
	ErrNotEnoughPlayers     GameError = "not enough players to start"
	ErrMustPlaySelected     GameError = "another card is selected"
	ErrPlayerAlreadyInGame  GameError = "player already in game"
	ErrAlreadyVoted         GameError = "already voted on this submission"
	ErrPassAlreadyUsed      GameError = "pass already used this game"
	ErrSwapAlreadyUsed      GameError = "swap already used this game"
	ErrInvalidPlayAction    GameError = "invalid play action"
	ErrInvalidVoteType      GameError = "invalid vote type"
	ErrNoReplacementCard    GameError = "no replacement card available"
	ErrNilConfig            GameError = "config cannot be nil"
	ErrNilGameRepo          GameError = "game repository cannot be nil"
	ErrNilPlayerRepo        GameError = "player repository cannot be nil"
	ErrNilHandCardRepo      GameError = "hand card repository cannot be nil"
	ErrNilCardRepo          GameError = "card repository cannot be nil"
	ErrNilSubmissionRepo    GameError = "submission repository cannot be nil"
	ErrNilPenaltyRepo       GameError = "penalty repository cannot be nil"
	ErrNilGroupRepo         GameError = "group repository cannot be nil"
	ErrNilChatRepo          GameError = "chat repository cannot be nil"
	ErrNilNotificationRepo  GameError = "notification repository cannot be nil"
	ErrNilUserRepo          GameError = "user repository cannot be nil"
	ErrNilCoinRepo          GameError = "coin ledger repository cannot be nil"
	ErrNilMessaging         GameError = "messaging service cannot be nil"
	ErrNilSampler           GameError = "card sampler cannot be nil"
	ErrNilClock             GameError = "clock cannot be nil"
	ErrNilUUIDGenerator     GameError = "UUID generator cannot be nil"
)
