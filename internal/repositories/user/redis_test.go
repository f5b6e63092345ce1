package user

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
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetUser() {
	err := s.repo.SaveUser(s.ctx, &SaveUserInput{
		User: &models.User{
			ID:      "alice",
			Name:    "Alice",
			Picture: "https://example.com/alice.png",
		},
	})
	s.Require().NoError(err)

	u, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal("alice", u.ID)
	s.Equal("Alice", u.Name)
	s.Equal("https://example.com/alice.png", u.Picture)
	s.Equal(0, u.WeeklyScore)
	s.Equal(0, u.TotalScore)
}

func (s *RedisRepositoryTestSuite) TestGetUserNotFound() {
	_, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "nobody"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveUserPreservesScores() {
	err := s.repo.SaveUser(s.ctx, &SaveUserInput{
		User: &models.User{ID: "alice", Name: "Alice"},
	})
	s.Require().NoError(err)

	err = s.repo.AddScores(s.ctx, &AddScoresInput{UserID: "alice", Points: 5})
	s.Require().NoError(err)

	// A profile update does not reset accumulated scores
	err = s.repo.SaveUser(s.ctx, &SaveUserInput{
		User: &models.User{ID: "alice", Name: "Alice B."},
	})
	s.Require().NoError(err)

	u, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal("Alice B.", u.Name)
	s.Equal(5, u.WeeklyScore)
	s.Equal(5, u.TotalScore)
}

func (s *RedisRepositoryTestSuite) TestAddScores() {
	err := s.repo.SaveUser(s.ctx, &SaveUserInput{
		User: &models.User{ID: "alice", Name: "Alice"},
	})
	s.Require().NoError(err)

	err = s.repo.AddScores(s.ctx, &AddScoresInput{UserID: "alice", Points: 2})
	s.Require().NoError(err)
	err = s.repo.AddScores(s.ctx, &AddScoresInput{UserID: "alice", Points: 3})
	s.Require().NoError(err)

	u, err := s.repo.GetUser(s.ctx, &GetUserInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(5, u.WeeklyScore)
	s.Equal(5, u.TotalScore)
}

func (s *RedisRepositoryTestSuite) TestAddScoresUnknownUser() {
	err := s.repo.AddScores(s.ctx, &AddScoresInput{UserID: "nobody", Points: 1})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *RedisRepositoryTestSuite) TestSessionRoundtrip() {
	err := s.repo.SaveUser(s.ctx, &SaveUserInput{
		User: &models.User{ID: "alice", Name: "Alice"},
	})
	s.Require().NoError(err)

	err = s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.Session{
			Token:     "tok-123",
			UserID:    "alice",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	})
	s.Require().NoError(err)

	u, err := s.repo.GetUserBySession(s.ctx, &GetUserBySessionInput{Token: "tok-123"})
	s.Require().NoError(err)
	s.Equal("alice", u.ID)
}

func (s *RedisRepositoryTestSuite) TestSessionExpires() {
	err := s.repo.SaveUser(s.ctx, &SaveUserInput{
		User: &models.User{ID: "alice", Name: "Alice"},
	})
	s.Require().NoError(err)

	err = s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.Session{
			Token:     "tok-123",
			UserID:    "alice",
			ExpiresAt: time.Now().Add(time.Minute),
		},
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.GetUserBySession(s.ctx, &GetUserBySessionInput{Token: "tok-123"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestCreateSessionAlreadyExpired() {
	err := s.repo.CreateSession(s.ctx, &CreateSessionInput{
		Session: &models.Session{
			Token:     "tok-123",
			UserID:    "alice",
			ExpiresAt: time.Now().Add(-time.Minute),
		},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestUnknownSessionToken() {
	_, err := s.repo.GetUserBySession(s.ctx, &GetUserBySessionInput{Token: "nope"})
	s.ErrorIs(err, ErrSessionNotFound)
}
