package coin_ledger

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

func (s *RedisRepositoryTestSuite) addCoins(id string, amount int, reason models.CoinReason, at time.Time) {
	err := s.repo.AddCoins(s.ctx, &AddCoinsInput{
		Transaction: &models.CoinTransaction{
			ID:        id,
			UserID:    "alice",
			Amount:    amount,
			Reason:    reason,
			GameID:    "game-1",
			CreatedAt: at,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestAddCoinsAccumulatesBalance() {
	s.addCoins("tx-1", 20, models.CoinReasonGameWin, s.testNow)
	s.addCoins("tx-2", 5, models.CoinReasonGameParticipation, s.testNow.Add(time.Minute))

	out, err := s.repo.GetBalance(s.ctx, &GetBalanceInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(25, out.Balance)
}

func (s *RedisRepositoryTestSuite) TestAddCoinsRejectsNonPositiveAmount() {
	err := s.repo.AddCoins(s.ctx, &AddCoinsInput{
		Transaction: &models.CoinTransaction{
			ID:        "tx-1",
			UserID:    "alice",
			Amount:    0,
			Reason:    models.CoinReasonGameWin,
			GameID:    "game-1",
			CreatedAt: s.testNow,
		},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetBalanceDefaultsToZero() {
	out, err := s.repo.GetBalance(s.ctx, &GetBalanceInput{UserID: "nobody"})
	s.Require().NoError(err)
	s.Equal(0, out.Balance)
}

func (s *RedisRepositoryTestSuite) TestListTransactionsNewestFirst() {
	s.addCoins("tx-1", 5, models.CoinReasonGameParticipation, s.testNow)
	s.addCoins("tx-2", 20, models.CoinReasonGameWin, s.testNow.Add(time.Minute))

	out, err := s.repo.ListTransactions(s.ctx, &ListTransactionsInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(out.Transactions, 2)

	s.Equal("tx-2", out.Transactions[0].ID)
	s.Equal(models.CoinReasonGameWin, out.Transactions[0].Reason)
	s.Equal("tx-1", out.Transactions[1].ID)
	s.Equal("game-1", out.Transactions[1].GameID)
	s.True(out.Transactions[1].CreatedAt.Equal(s.testNow))
}

func (s *RedisRepositoryTestSuite) TestListTransactionsEmpty() {
	out, err := s.repo.ListTransactions(s.ctx, &ListTransactionsInput{UserID: "nobody"})
	s.Require().NoError(err)
	s.Empty(out.Transactions)
}
