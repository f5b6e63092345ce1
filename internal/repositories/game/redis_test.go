package game

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) createGame(gameID string) *models.Game {
	out, err := s.repo.CreateGame(s.ctx, &CreateGameInput{
		GameID:    gameID,
		GroupID:   "group-1",
		CreatedBy: "creator",
		Now:       s.testNow,
	})
	s.Require().NoError(err)
	return out.Game
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetGame() {
	s.createGame("game-1")

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)

	s.Equal("game-1", game.ID)
	s.Equal("group-1", game.GroupID)
	s.Equal(models.GameStatusWaiting, game.Status)
	s.Equal("creator", game.CreatedBy)
	s.Empty(game.Players)
	s.Empty(game.TurnOrder)
	s.True(game.CreatedAt.Equal(s.testNow))
	s.True(game.FinishedAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestAddPlayerSetSemantics() {
	s.createGame("game-1")

	added, err := s.repo.AddPlayer(s.ctx, &AddPlayerInput{GameID: "game-1", UserID: "alice"})
	s.Require().NoError(err)
	s.True(added.Added)

	// Adding the same player again is a no-op
	added, err = s.repo.AddPlayer(s.ctx, &AddPlayerInput{GameID: "game-1", UserID: "alice"})
	s.Require().NoError(err)
	s.False(added.Added)

	added, err = s.repo.AddPlayer(s.ctx, &AddPlayerInput{GameID: "game-1", UserID: "bob"})
	s.Require().NoError(err)
	s.True(added.Added)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal([]string{"alice", "bob"}, game.Players)
	s.Equal([]string{"alice", "bob"}, game.TurnOrder)
}

func (s *RedisRepositoryTestSuite) TestAddPlayerGameNotFound() {
	_, err := s.repo.AddPlayer(s.ctx, &AddPlayerInput{GameID: "missing", UserID: "alice"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestRemovePlayer() {
	s.createGame("game-1")
	for _, id := range []string{"alice", "bob", "carol"} {
		_, err := s.repo.AddPlayer(s.ctx, &AddPlayerInput{GameID: "game-1", UserID: id})
		s.Require().NoError(err)
	}

	err := s.repo.RemovePlayer(s.ctx, &RemovePlayerInput{GameID: "game-1", UserID: "bob"})
	s.Require().NoError(err)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal([]string{"alice", "carol"}, game.Players)
	s.Equal([]string{"alice", "carol"}, game.TurnOrder)
}

func (s *RedisRepositoryTestSuite) TestRemoveLastPlayerLeavesEmptyList() {
	s.createGame("game-1")
	_, err := s.repo.AddPlayer(s.ctx, &AddPlayerInput{GameID: "game-1", UserID: "alice"})
	s.Require().NoError(err)

	err = s.repo.RemovePlayer(s.ctx, &RemovePlayerInput{GameID: "game-1", UserID: "alice"})
	s.Require().NoError(err)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Empty(game.Players)
	s.Empty(game.TurnOrder)
	s.Equal("", game.CurrentPlayer())
}

func (s *RedisRepositoryTestSuite) TestStartGameOnlyOnce() {
	s.createGame("game-1")

	out, err := s.repo.StartGame(s.ctx, &StartGameInput{GameID: "game-1", Now: s.testNow})
	s.Require().NoError(err)
	s.True(out.Started)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal(models.GameStatusStarted, game.Status)
	s.Equal(1, game.CurrentHand)
	s.Equal(0, game.CurrentTurnIndex)
	s.True(game.HandStartedAt.Equal(s.testNow))

	// The losing racer sees Started=false
	out, err = s.repo.StartGame(s.ctx, &StartGameInput{GameID: "game-1", Now: s.testNow.Add(time.Second)})
	s.Require().NoError(err)
	s.False(out.Started)
}

func (s *RedisRepositoryTestSuite) TestAdvanceTurnWraps() {
	s.createGame("game-1")
	for _, id := range []string{"alice", "bob"} {
		_, err := s.repo.AddPlayer(s.ctx, &AddPlayerInput{GameID: "game-1", UserID: id})
		s.Require().NoError(err)
	}
	_, err := s.repo.StartGame(s.ctx, &StartGameInput{GameID: "game-1", Now: s.testNow})
	s.Require().NoError(err)

	err = s.repo.AdvanceTurn(s.ctx, &AdvanceTurnInput{GameID: "game-1", Now: s.testNow})
	s.Require().NoError(err)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal(1, game.CurrentTurnIndex)
	s.Equal("bob", game.CurrentPlayer())

	err = s.repo.AdvanceTurn(s.ctx, &AdvanceTurnInput{GameID: "game-1", Now: s.testNow})
	s.Require().NoError(err)

	game, err = s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal(0, game.CurrentTurnIndex)
	s.Equal("alice", game.CurrentPlayer())
}

func (s *RedisRepositoryTestSuite) TestAdvanceHandConditionalOnCurrentHand() {
	s.createGame("game-1")
	_, err := s.repo.StartGame(s.ctx, &StartGameInput{GameID: "game-1", Now: s.testNow})
	s.Require().NoError(err)

	// Wrong FromHand is a no-op
	out, err := s.repo.AdvanceHand(s.ctx, &AdvanceHandInput{GameID: "game-1", FromHand: 2, Now: s.testNow})
	s.Require().NoError(err)
	s.False(out.Advanced)

	out, err = s.repo.AdvanceHand(s.ctx, &AdvanceHandInput{GameID: "game-1", FromHand: 1, Now: s.testNow.Add(time.Minute)})
	s.Require().NoError(err)
	s.True(out.Advanced)
	s.Equal(2, out.NextHand)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal(2, game.CurrentHand)
	s.Equal(0, game.CurrentTurnIndex)
	s.True(game.HandStartedAt.Equal(s.testNow.Add(time.Minute)))

	// A racer still holding hand 1 loses
	out, err = s.repo.AdvanceHand(s.ctx, &AdvanceHandInput{GameID: "game-1", FromHand: 1, Now: s.testNow})
	s.Require().NoError(err)
	s.False(out.Advanced)
}

func (s *RedisRepositoryTestSuite) TestFinishGameOnlyOnce() {
	s.createGame("game-1")
	_, err := s.repo.StartGame(s.ctx, &StartGameInput{GameID: "game-1", Now: s.testNow})
	s.Require().NoError(err)

	finishedAt := s.testNow.Add(10 * time.Minute)
	out, err := s.repo.FinishGame(s.ctx, &FinishGameInput{GameID: "game-1", Now: finishedAt})
	s.Require().NoError(err)
	s.True(out.Finished)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal(models.GameStatusFinished, game.Status)
	s.True(game.FinishedAt.Equal(finishedAt))

	out, err = s.repo.FinishGame(s.ctx, &FinishGameInput{GameID: "game-1", Now: finishedAt})
	s.Require().NoError(err)
	s.False(out.Finished)
}

func (s *RedisRepositoryTestSuite) TestGetActiveGamesByGroupFiltersFinished() {
	s.createGame("game-1")
	s.createGame("game-2")

	_, err := s.repo.StartGame(s.ctx, &StartGameInput{GameID: "game-2", Now: s.testNow})
	s.Require().NoError(err)
	_, err = s.repo.FinishGame(s.ctx, &FinishGameInput{GameID: "game-2", Now: s.testNow})
	s.Require().NoError(err)

	out, err := s.repo.GetActiveGamesByGroup(s.ctx, &GetActiveGamesByGroupInput{GroupID: "group-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Games, 1)
	s.Equal("game-1", out.Games[0].ID)
}
