package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusWaiting indicates a game is waiting for players to join
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusReady is kept for compatibility with stored games; no rule
	// transitions into it anymore
	GameStatusReady GameStatus = "ready"

	// GameStatusStarted indicates a game is in progress
	GameStatusStarted GameStatus = "started"

	// GameStatusFinished indicates a game has completed all three hands
	GameStatusFinished GameStatus = "finished"
)

// MaxHands is the number of hands played per game
const MaxHands = 3

// ActiveStatuses are the game states that count as in progress for the
// one-game-per-group-per-player rule
var ActiveStatuses = []GameStatus{
	GameStatusWaiting,
	GameStatusReady,
	GameStatusStarted,
}

// Game represents a card-dare game session within a group
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// GroupID is the group the game belongs to
	GroupID string

	// Status is the current state of the game
	Status GameStatus

	// CreatedBy is the user ID of the game creator
	CreatedBy string

	// CurrentHand is the hand being played (1..MaxHands, 0 before start)
	CurrentHand int

	// Players contains the IDs of players in the game
	Players []string

	// TurnOrder is the fixed rotation of player IDs
	TurnOrder []string

	// CurrentTurnIndex is taken modulo len(TurnOrder) to find whose turn it is
	CurrentTurnIndex int

	// HandStartedAt is when the current hand began
	HandStartedAt time.Time

	// TurnStartedAt is when the current turn began
	TurnStartedAt time.Time

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// FinishedAt is when the game finished
	FinishedAt time.Time
}

// CurrentPlayer returns the ID of the player whose turn it is.
// An empty turn order returns "" which disables turn enforcement.
func (g *Game) CurrentPlayer() string {
	if len(g.TurnOrder) == 0 {
		return ""
	}
	return g.TurnOrder[g.CurrentTurnIndex%len(g.TurnOrder)]
}
