package game

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/nawal123158-wq/kartlichallenge/internal/common/clock/mocks"
	uuidMocks "github.com/nawal123158-wq/kartlichallenge/internal/common/uuid/mocks"
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

// recordingSink captures published events for assertions
type recordingSink struct {
	events []*Event
}

func (r *recordingSink) Publish(event *Event) {
	r.events = append(r.events, event)
}

func (r *recordingSink) types() []EventType {
	types := make([]EventType, 0, len(r.events))
	for _, e := range r.events {
		types = append(types, e.Type)
	}
	return types
}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID

	mr     *miniredis.Miniredis
	client *redis.Client

	games         gameRepo.Repository
	players       playerRepo.Repository
	handCards     handCardRepo.Repository
	cards         cardRepo.Repository
	submissions   submissionRepo.Repository
	penalties     penaltyRepo.Repository
	groups        groupRepo.Repository
	chat          chatRepo.Repository
	notifications notificationRepo.Repository
	users         userRepo.Repository
	coins         coinRepo.Repository

	sink *recordingSink
	svc  Service
	ctx  context.Context

	// now is returned by the mocked clock; tests advance it directly
	now time.Time

	uuidCounter int
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	s.uuidCounter = 0

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.games, err = gameRepo.NewRedis(&gameRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.players, err = playerRepo.NewRedis(&playerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.handCards, err = handCardRepo.NewRedis(&handCardRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.cards, err = cardRepo.NewRedis(&cardRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.submissions, err = submissionRepo.NewRedis(&submissionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.penalties, err = penaltyRepo.NewRedis(&penaltyRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.groups, err = groupRepo.NewRedis(&groupRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.chat, err = chatRepo.NewRedis(&chatRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.notifications, err = notificationRepo.NewRedis(&notificationRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.users, err = userRepo.NewRedis(&userRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.coins, err = coinRepo.NewRedis(&coinRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.uuidCounter++
		return fmt.Sprintf("uuid-%04d", s.uuidCounter)
	}).AnyTimes()

	s.seedCatalog()
	s.seedGroup()

	s.sink = &recordingSink{}
	s.buildService(2)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// buildService wires the service; autoStartPlayers varies per scenario so
// mid-size games can be seated without starting early
func (s *GameServiceTestSuite) buildService(autoStartPlayers int) {
	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{Seed: 7})
	s.Require().NoError(err)

	svc, err := NewService(&Config{
		GameRepo:         s.games,
		PlayerRepo:       s.players,
		HandCardRepo:     s.handCards,
		CardRepo:         s.cards,
		SubmissionRepo:   s.submissions,
		PenaltyRepo:      s.penalties,
		GroupRepo:        s.groups,
		ChatRepo:         s.chat,
		NotificationRepo: s.notifications,
		UserRepo:         s.users,
		CoinRepo:         s.coins,
		Sampler:          deck.New(&deck.Config{Seed: 42}),
		Clock:            s.mockClock,
		UUIDGenerator:    s.mockUUID,
		Messaging:        msgSvc,
		Events:           s.sink,
		AutoStartPlayers: autoStartPlayers,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *GameServiceTestSuite) seedCatalog() {
	seeds := []cardRepo.SeedCard{
		{Category: models.CardCategoryComedy, Title: "Duck face selfie", Description: "Take a duck face selfie", Difficulty: 1, Points: 2, TimeLimitSeconds: 60},
		{Category: models.CardCategoryComedy, Title: "Robot dance", Description: "Do the robot for ten seconds", Difficulty: 1, Points: 2, TimeLimitSeconds: 60},
		{Category: models.CardCategorySocial, Title: "High five a stranger", Description: "High five someone you don't know", Difficulty: 2, Points: 2, TimeLimitSeconds: 60},
		{Category: models.CardCategorySocial, Title: "Compliment someone", Description: "Give a stranger a sincere compliment", Difficulty: 1, Points: 2, TimeLimitSeconds: 60},
		{Category: models.CardCategorySkill, Title: "Balance a bottle", Description: "Balance a bottle on your head", Difficulty: 2, Points: 2, TimeLimitSeconds: 60},
		{Category: models.CardCategoryEnvironment, Title: "Find something red", Description: "Photograph three red things", Difficulty: 1, Points: 2, TimeLimitSeconds: 60},
		{Category: models.CardCategoryPenalty, Title: "Spin around", Description: "Spin around ten times", Difficulty: 1, Points: 0, TimeLimitSeconds: 30},
		{Category: models.CardCategoryPenalty, Title: "Animal noises", Description: "Make animal noises for a minute", Difficulty: 1, Points: 0, TimeLimitSeconds: 60},
		{Category: models.CardCategoryPenalty, Title: "Frozen statue", Description: "Stand perfectly still for a minute", Difficulty: 1, Points: 0, TimeLimitSeconds: 60},
	}

	err := s.cards.SeedCatalog(s.ctx, &cardRepo.SeedCatalogInput{Cards: seeds})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) seedGroup() {
	names := map[string]string{
		"alice": "Alice",
		"bob":   "Bob",
		"carol": "Carol",
		"dave":  "Dave",
	}

	for id, name := range names {
		err := s.groups.AddMember(s.ctx, &groupRepo.AddMemberInput{GroupID: "group-1", UserID: id})
		s.Require().NoError(err)

		err = s.users.SaveUser(s.ctx, &userRepo.SaveUserInput{
			User: &models.User{ID: id, Name: name},
		})
		s.Require().NoError(err)
	}
}

// startedGame seats the given players and returns the started game. The
// last join triggers the auto-start.
func (s *GameServiceTestSuite) startedGame(players ...string) *models.Game {
	s.buildService(len(players))

	created, err := s.svc.CreateGame(s.ctx, &CreateGameInput{
		GroupID: "group-1",
		UserID:  players[0],
	})
	s.Require().NoError(err)

	game := created.Game
	for _, userID := range players[1:] {
		joined, err := s.svc.JoinGame(s.ctx, &JoinGameInput{GameID: game.ID, UserID: userID})
		s.Require().NoError(err)
		game = joined.Game
	}

	s.Require().Equal(models.GameStatusStarted, game.Status)
	s.Require().Equal(1, game.CurrentHand)
	return game
}

func (s *GameServiceTestSuite) firstCardID(gameID, userID string) string {
	out, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: gameID, UserID: userID})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Cards)
	return out.Cards[0].HandCard.CardID
}

func (s *GameServiceTestSuite) play(gameID, userID string) *models.Submission {
	out, err := s.svc.PlayCard(s.ctx, &PlayCardInput{
		GameID:      gameID,
		UserID:      userID,
		CardID:      s.firstCardID(gameID, userID),
		Action:      PlayActionPlay,
		PhotoBase64: "aGVsbG8=",
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Submission)
	return out.Submission
}

func (s *GameServiceTestSuite) refuse(gameID, userID string) {
	out, err := s.svc.PlayCard(s.ctx, &PlayCardInput{
		GameID: gameID,
		UserID: userID,
		CardID: s.firstCardID(gameID, userID),
		Action: PlayActionRefuse,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.PenaltyCard)
}

func (s *GameServiceTestSuite) getGame(gameID string) *models.Game {
	game, err := s.games.GetGame(s.ctx, &gameRepo.GetGameInput{GameID: gameID})
	s.Require().NoError(err)
	return game
}

func (s *GameServiceTestSuite) TestCreateGame() {
	out, err := s.svc.CreateGame(s.ctx, &CreateGameInput{GroupID: "group-1", UserID: "alice"})
	s.Require().NoError(err)

	s.Equal(models.GameStatusWaiting, out.Game.Status)
	s.Equal("alice", out.Game.CreatedBy)
	s.Equal([]string{"alice"}, out.Game.Players)

	entry, err := s.players.GetEntry(s.ctx, &playerRepo.GetEntryInput{
		GameID: out.Game.ID,
		UserID: "alice",
	})
	s.Require().NoError(err)
	s.True(entry.JoinedAt.Equal(s.now))
}

func (s *GameServiceTestSuite) TestCreateGameRequiresGroupMembership() {
	_, err := s.svc.CreateGame(s.ctx, &CreateGameInput{GroupID: "group-1", UserID: "mallory"})
	s.ErrorIs(err, ErrNotGroupMember)
}

func (s *GameServiceTestSuite) TestGetGameNotFound() {
	_, err := s.svc.GetGame(s.ctx, &GetGameInput{GameID: "missing", UserID: "alice"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestJoinAutoStartsAtThreshold() {
	created, err := s.svc.CreateGame(s.ctx, &CreateGameInput{GroupID: "group-1", UserID: "alice"})
	s.Require().NoError(err)

	joined, err := s.svc.JoinGame(s.ctx, &JoinGameInput{GameID: created.Game.ID, UserID: "bob"})
	s.Require().NoError(err)

	s.True(joined.AutoStarted)
	s.Equal(models.GameStatusStarted, joined.Game.Status)
	s.Equal(1, joined.Game.CurrentHand)
	s.Equal("alice", joined.Game.CurrentPlayer())
	s.Contains(s.sink.types(), EventGameStarted)

	// Everyone holds a full hand
	for _, userID := range []string{"alice", "bob"} {
		out, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: joined.Game.ID, UserID: userID})
		s.Require().NoError(err)
		s.Len(out.Cards, 3)
	}
}

func (s *GameServiceTestSuite) TestFirstHandsMixNormalAndPenalty() {
	game := s.startedGame("alice", "bob")

	out, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(out.Cards, 3)

	penaltyCount := 0
	for _, view := range out.Cards {
		s.Require().NotNil(view.Card)
		if view.Card.Category == models.CardCategoryPenalty {
			penaltyCount++
		}
	}
	s.Equal(1, penaltyCount)
}

func (s *GameServiceTestSuite) TestJoinStartedGameRejected() {
	game := s.startedGame("alice", "bob")

	_, err := s.svc.JoinGame(s.ctx, &JoinGameInput{GameID: game.ID, UserID: "carol"})
	s.ErrorIs(err, ErrInvalidGameState)
}

func (s *GameServiceTestSuite) TestJoinTwiceRejected() {
	created, err := s.svc.CreateGame(s.ctx, &CreateGameInput{GroupID: "group-1", UserID: "alice"})
	s.Require().NoError(err)

	_, err = s.svc.JoinGame(s.ctx, &JoinGameInput{GameID: created.Game.ID, UserID: "alice"})
	s.ErrorIs(err, ErrPlayerAlreadyInGame)
}

func (s *GameServiceTestSuite) TestCreateGameLeavesOtherActiveGame() {
	s.buildService(4)

	first, err := s.svc.CreateGame(s.ctx, &CreateGameInput{GroupID: "group-1", UserID: "alice"})
	s.Require().NoError(err)

	second, err := s.svc.CreateGame(s.ctx, &CreateGameInput{GroupID: "group-1", UserID: "alice"})
	s.Require().NoError(err)

	s.NotContains(s.getGame(first.Game.ID).Players, "alice")
	s.Contains(s.getGame(second.Game.ID).Players, "alice")

	_, err = s.players.GetEntry(s.ctx, &playerRepo.GetEntryInput{
		GameID: first.Game.ID,
		UserID: "alice",
	})
	s.ErrorIs(err, playerRepo.ErrEntryNotFound)
}

func (s *GameServiceTestSuite) TestExplicitStart() {
	s.buildService(4)

	created, err := s.svc.CreateGame(s.ctx, &CreateGameInput{GroupID: "group-1", UserID: "alice"})
	s.Require().NoError(err)
	gameID := created.Game.ID

	// A lone creator cannot start
	_, err = s.svc.StartGame(s.ctx, &StartGameInput{GameID: gameID, UserID: "alice"})
	s.ErrorIs(err, ErrNotEnoughPlayers)

	_, err = s.svc.JoinGame(s.ctx, &JoinGameInput{GameID: gameID, UserID: "bob"})
	s.Require().NoError(err)

	// Only the creator can start
	_, err = s.svc.StartGame(s.ctx, &StartGameInput{GameID: gameID, UserID: "bob"})
	s.ErrorIs(err, ErrNotCreator)

	out, err := s.svc.StartGame(s.ctx, &StartGameInput{GameID: gameID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(models.GameStatusStarted, out.Game.Status)

	_, err = s.svc.StartGame(s.ctx, &StartGameInput{GameID: gameID, UserID: "alice"})
	s.ErrorIs(err, ErrInvalidGameState)
}

func (s *GameServiceTestSuite) TestGetGameEnrichesPlayers() {
	game := s.startedGame("alice", "bob")

	out, err := s.svc.GetGame(s.ctx, &GetGameInput{GameID: game.ID, UserID: "carol"})
	s.Require().NoError(err)

	s.Equal("alice", out.CurrentPlayer)
	s.Require().Len(out.Players, 2)

	names := map[string]string{}
	for _, p := range out.Players {
		names[p.UserID] = p.Name
	}
	s.Equal("Alice", names["alice"])
	s.Equal("Bob", names["bob"])
}

func (s *GameServiceTestSuite) TestPlayOutOfTurn() {
	game := s.startedGame("alice", "bob")

	_, err := s.svc.PlayCard(s.ctx, &PlayCardInput{
		GameID: game.ID,
		UserID: "bob",
		CardID: s.firstCardID(game.ID, "bob"),
		Action: PlayActionPlay,
	})
	s.ErrorIs(err, ErrNotYourTurn)
}

func (s *GameServiceTestSuite) TestPlayAfterHandTimeExpired() {
	game := s.startedGame("alice", "bob")

	s.now = s.now.Add(61 * time.Second)

	_, err := s.svc.PlayCard(s.ctx, &PlayCardInput{
		GameID: game.ID,
		UserID: "alice",
		CardID: s.firstCardID(game.ID, "alice"),
		Action: PlayActionPlay,
	})
	s.ErrorIs(err, ErrHandTimeExpired)

	out, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(time.Duration(0), out.RemainingTime)
}

func (s *GameServiceTestSuite) TestPlayUnknownCard() {
	game := s.startedGame("alice", "bob")

	_, err := s.svc.PlayCard(s.ctx, &PlayCardInput{
		GameID: game.ID,
		UserID: "alice",
		CardID: "not-in-hand",
		Action: PlayActionPlay,
	})
	s.ErrorIs(err, ErrCardNotInHand)
}

func (s *GameServiceTestSuite) TestPlayCreatesSubmissionAndCommitsHand() {
	game := s.startedGame("alice", "bob")

	sub := s.play(game.ID, "alice")
	s.Equal(models.SubmissionStatusPending, sub.Status)
	s.Equal(1, sub.HandNumber)
	s.Equal("aGVsbG8=", sub.PhotoBase64)
	s.Contains(s.sink.types(), EventCardPlayed)

	// The rest of the hand was discarded
	out, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Empty(out.Cards)

	// The turn moved on
	s.Equal("bob", s.getGame(game.ID).CurrentPlayer())

	// Bob was asked to vote
	notifs, err := s.svc.GetNotifications(s.ctx, &GetNotificationsInput{UserID: "bob"})
	s.Require().NoError(err)

	found := false
	for _, n := range notifs.Notifications {
		if n.Type == models.NotificationTypeVoteNeeded {
			found = true
		}
	}
	s.True(found)
}

func (s *GameServiceTestSuite) TestSelectionPinsTheHand() {
	game := s.startedGame("alice", "bob")

	out, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(out.Cards, 3)

	pinned := out.Cards[0].HandCard.CardID
	other := out.Cards[1].HandCard.CardID

	_, err = s.svc.SelectCard(s.ctx, &SelectCardInput{GameID: game.ID, UserID: "alice", CardID: pinned})
	s.Require().NoError(err)

	_, err = s.svc.PlayCard(s.ctx, &PlayCardInput{
		GameID: game.ID,
		UserID: "alice",
		CardID: other,
		Action: PlayActionRefuse,
	})
	s.ErrorIs(err, ErrMustPlaySelected)

	// Re-selecting moves the pin
	_, err = s.svc.SelectCard(s.ctx, &SelectCardInput{GameID: game.ID, UserID: "alice", CardID: other})
	s.Require().NoError(err)

	played, err := s.svc.PlayCard(s.ctx, &PlayCardInput{
		GameID:      game.ID,
		UserID:      "alice",
		CardID:      other,
		Action:      PlayActionPlay,
		PhotoBase64: "cGhvdG8=",
	})
	s.Require().NoError(err)
	s.NotNil(played.Submission)
}

func (s *GameServiceTestSuite) TestPassIsOneShot() {
	game := s.startedGame("alice", "bob")

	// Hand 1: alice passes, bob refuses; the hand advances
	_, err := s.svc.PlayCard(s.ctx, &PlayCardInput{
		GameID: game.ID,
		UserID: "alice",
		CardID: s.firstCardID(game.ID, "alice"),
		Action: PlayActionPass,
	})
	s.Require().NoError(err)

	s.refuse(game.ID, "bob")
	s.Require().Equal(2, s.getGame(game.ID).CurrentHand)

	_, err = s.svc.PlayCard(s.ctx, &PlayCardInput{
		GameID: game.ID,
		UserID: "alice",
		CardID: s.firstCardID(game.ID, "alice"),
		Action: PlayActionPass,
	})
	s.ErrorIs(err, ErrPassAlreadyUsed)
}

func (s *GameServiceTestSuite) TestRefuseAssignsPenalty() {
	game := s.startedGame("alice", "bob")

	s.refuse(game.ID, "alice")

	out, err := s.svc.GetPenalties(s.ctx, &GetPenaltiesInput{GameID: game.ID, UserID: "bob"})
	s.Require().NoError(err)
	s.Require().Len(out.Penalties, 1)
	s.Equal("alice", out.Penalties[0].Penalty.UserID)
	s.Equal(models.PenaltyReasonRefuse, out.Penalties[0].Penalty.Reason)
	s.Require().NotNil(out.Penalties[0].Card)
	s.Equal(models.CardCategoryPenalty, out.Penalties[0].Card.Category)
}

func (s *GameServiceTestSuite) TestSwapIsOneShot() {
	game := s.startedGame("alice", "bob")

	before, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	swapID := before.Cards[0].HandCard.CardID

	out, err := s.svc.SwapCard(s.ctx, &SwapCardInput{GameID: game.ID, UserID: "alice", CardID: swapID})
	s.Require().NoError(err)
	s.Require().NotNil(out.NewCard)
	s.NotEqual(swapID, out.NewCard.Card.ID)

	after, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Len(after.Cards, 3)
	s.True(after.SwapUsed)

	_, err = s.svc.SwapCard(s.ctx, &SwapCardInput{
		GameID: game.ID,
		UserID: "alice",
		CardID: after.Cards[0].HandCard.CardID,
	})
	s.ErrorIs(err, ErrSwapAlreadyUsed)
}

func (s *GameServiceTestSuite) TestSingleVoteApprovesInTwoPlayerGame() {
	game := s.startedGame("alice", "bob")
	sub := s.play(game.ID, "alice")

	// One eligible voter makes one vote a majority
	out, err := s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "bob",
		Type:         models.VoteTypeApprove,
	})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusApproved, out.Status)
	s.Contains(s.sink.types(), EventSubmissionResolved)

	// The card's points land on the game score and the profile totals
	entry, err := s.players.GetEntry(s.ctx, &playerRepo.GetEntryInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(2, entry.Score)

	u, err := s.users.GetUser(s.ctx, &userRepo.GetUserInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(2, u.WeeklyScore)
	s.Equal(2, u.TotalScore)
}

func (s *GameServiceTestSuite) TestVoteValidation() {
	game := s.startedGame("alice", "bob", "carol")
	sub := s.play(game.ID, "alice")

	_, err := s.svc.CastVote(s.ctx, &CastVoteInput{SubmissionID: sub.ID, UserID: "bob", Type: "maybe"})
	s.ErrorIs(err, ErrInvalidVoteType)

	_, err = s.svc.CastVote(s.ctx, &CastVoteInput{SubmissionID: "missing", UserID: "bob", Type: models.VoteTypeApprove})
	s.ErrorIs(err, ErrSubmissionNotFound)

	// Spectators outside the game cannot vote
	_, err = s.svc.CastVote(s.ctx, &CastVoteInput{SubmissionID: sub.ID, UserID: "dave", Type: models.VoteTypeApprove})
	s.ErrorIs(err, ErrPlayerNotInGame)

	// The submitter cannot vote on their own proof
	_, err = s.svc.CastVote(s.ctx, &CastVoteInput{SubmissionID: sub.ID, UserID: "alice", Type: models.VoteTypeApprove})
	s.ErrorIs(err, ErrOwnSubmission)
}

func (s *GameServiceTestSuite) TestMajorityVoteInThreePlayerGame() {
	game := s.startedGame("alice", "bob", "carol")
	sub := s.play(game.ID, "alice")

	// Two eligible voters need two votes for a majority
	out, err := s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "bob",
		Type:         models.VoteTypeApprove,
	})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusPending, out.Status)

	// A second vote from the same voter is refused
	_, err = s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "bob",
		Type:         models.VoteTypeReject,
	})
	s.ErrorIs(err, ErrAlreadyVoted)

	out, err = s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "carol",
		Type:         models.VoteTypeApprove,
	})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusApproved, out.Status)

	// A vote after resolution is refused
	_, err = s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "carol",
		Type:         models.VoteTypeApprove,
	})
	s.ErrorIs(err, ErrSubmissionNotPending)
}

func (s *GameServiceTestSuite) TestEveryoneVotedTieRejects() {
	game := s.startedGame("alice", "bob", "carol")
	sub := s.play(game.ID, "alice")

	out, err := s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "bob",
		Type:         models.VoteTypeApprove,
	})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusPending, out.Status)

	// 1-1 with all eligible votes in: the tie goes to rejection
	out, err = s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "carol",
		Type:         models.VoteTypeReject,
	})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusRejected, out.Status)

	// Rejection drew a penalty for the submitter
	penalties, err := s.svc.GetPenalties(s.ctx, &GetPenaltiesInput{GameID: game.ID, UserID: "bob"})
	s.Require().NoError(err)
	s.Require().Len(penalties.Penalties, 1)
	s.Equal("alice", penalties.Penalties[0].Penalty.UserID)
	s.Equal(models.PenaltyReasonRejected, penalties.Penalties[0].Penalty.Reason)

	// No points for a rejected submission
	entry, err := s.players.GetEntry(s.ctx, &playerRepo.GetEntryInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(0, entry.Score)
}

func (s *GameServiceTestSuite) TestTimeoutWithNoVotesRejects() {
	game := s.startedGame("alice", "bob", "carol")
	sub := s.play(game.ID, "alice")

	s.now = s.now.Add(61 * time.Second)

	// Listing lazily resolves the timed-out submission
	out, err := s.svc.GetSubmissions(s.ctx, &GetSubmissionsInput{GameID: game.ID, UserID: "bob"})
	s.Require().NoError(err)
	s.Empty(out.Submissions)

	settled, err := s.submissions.GetSubmission(s.ctx, &submissionRepo.GetSubmissionInput{SubmissionID: sub.ID})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusRejected, settled.Status)
}

func (s *GameServiceTestSuite) TestTimeoutBelowVoteFloorStaysPending() {
	game := s.startedGame("alice", "bob", "carol", "dave")
	sub := s.play(game.ID, "alice")

	// Three eligible voters: one vote is below the floor of two
	_, err := s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "bob",
		Type:         models.VoteTypeApprove,
	})
	s.Require().NoError(err)

	s.now = s.now.Add(61 * time.Second)

	out, err := s.svc.GetSubmissions(s.ctx, &GetSubmissionsInput{GameID: game.ID, UserID: "bob"})
	s.Require().NoError(err)
	s.Require().Len(out.Submissions, 1)
	s.Equal(sub.ID, out.Submissions[0].Submission.ID)
	s.Equal(models.VoteTypeApprove, out.Submissions[0].YourVote)
}

func (s *GameServiceTestSuite) TestTimeoutAtVoteFloorCompares() {
	game := s.startedGame("alice", "bob", "carol", "dave")
	sub := s.play(game.ID, "alice")

	_, err := s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "bob",
		Type:         models.VoteTypeApprove,
	})
	s.Require().NoError(err)

	_, err = s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "carol",
		Type:         models.VoteTypeReject,
	})
	s.Require().NoError(err)

	s.now = s.now.Add(61 * time.Second)

	// 1-1 meets the floor of two; on timeout the tie rejects
	out, err := s.svc.GetSubmissions(s.ctx, &GetSubmissionsInput{GameID: game.ID, UserID: "dave"})
	s.Require().NoError(err)
	s.Empty(out.Submissions)

	settled, err := s.submissions.GetSubmission(s.ctx, &submissionRepo.GetSubmissionInput{SubmissionID: sub.ID})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusRejected, settled.Status)
}

func (s *GameServiceTestSuite) TestHandAdvancesWhenEveryoneActed() {
	game := s.startedGame("alice", "bob")

	sub := s.play(game.ID, "alice")

	// Bob still holds cards, so the hand is not done yet
	_, err := s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "bob",
		Type:         models.VoteTypeApprove,
	})
	s.Require().NoError(err)
	s.Equal(1, s.getGame(game.ID).CurrentHand)

	s.refuse(game.ID, "bob")

	fresh := s.getGame(game.ID)
	s.Equal(2, fresh.CurrentHand)
	s.Equal("alice", fresh.CurrentPlayer())
	s.Contains(s.sink.types(), EventHandAdvanced)

	// The new hand was dealt exactly once
	out, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Len(out.Cards, 3)
}

func (s *GameServiceTestSuite) TestHandWaitsForPendingSubmission() {
	game := s.startedGame("alice", "bob")

	s.play(game.ID, "alice")
	s.refuse(game.ID, "bob")

	// No card is in hand, but alice's submission is still collecting votes
	s.Equal(1, s.getGame(game.ID).CurrentHand)
}

func (s *GameServiceTestSuite) TestFinalHandDealsOnlyPenaltyCards() {
	game := s.startedGame("alice", "bob")

	for hand := 1; hand <= 2; hand++ {
		s.refuse(game.ID, "alice")
		s.refuse(game.ID, "bob")
	}

	s.Require().Equal(3, s.getGame(game.ID).CurrentHand)

	out, err := s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: game.ID, UserID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(out.Cards, 3)
	for _, view := range out.Cards {
		s.Equal(models.CardCategoryPenalty, view.Card.Category)
	}
}

func (s *GameServiceTestSuite) TestFullGameFinishesWithCoinPayouts() {
	game := s.startedGame("alice", "bob")

	// Hand 1: alice earns points, bob refuses
	sub := s.play(game.ID, "alice")
	_, err := s.svc.CastVote(s.ctx, &CastVoteInput{
		SubmissionID: sub.ID,
		UserID:       "bob",
		Type:         models.VoteTypeApprove,
	})
	s.Require().NoError(err)
	s.refuse(game.ID, "bob")

	// Hands 2 and 3: everyone refuses
	for hand := 2; hand <= 3; hand++ {
		s.Require().Equal(hand, s.getGame(game.ID).CurrentHand)
		s.refuse(game.ID, "alice")
		s.refuse(game.ID, "bob")
	}

	fresh := s.getGame(game.ID)
	s.Equal(models.GameStatusFinished, fresh.Status)
	s.True(fresh.FinishedAt.Equal(s.now))
	s.Contains(s.sink.types(), EventGameFinished)

	// Top score wins the bonus; everyone else gets the participation award
	aliceBalance, err := s.coins.GetBalance(s.ctx, &coinRepo.GetBalanceInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(20, aliceBalance.Balance)

	bobBalance, err := s.coins.GetBalance(s.ctx, &coinRepo.GetBalanceInput{UserID: "bob"})
	s.Require().NoError(err)
	s.Equal(5, bobBalance.Balance)

	txs, err := s.coins.ListTransactions(s.ctx, &coinRepo.ListTransactionsInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(txs.Transactions, 1)
	s.Equal(models.CoinReasonGameWin, txs.Transactions[0].Reason)
	s.Equal(game.ID, txs.Transactions[0].GameID)

	// A finished game no longer serves hands
	_, err = s.svc.GetMyCards(s.ctx, &GetMyCardsInput{GameID: game.ID, UserID: "alice"})
	s.ErrorIs(err, ErrInvalidGameState)
}

func (s *GameServiceTestSuite) TestTiedTopScoresAllWin() {
	game := s.startedGame("alice", "bob")

	// Nobody scores; a 0-0 tie pays the win bonus to both
	for hand := 1; hand <= 3; hand++ {
		s.refuse(game.ID, "alice")
		s.refuse(game.ID, "bob")
	}

	s.Equal(models.GameStatusFinished, s.getGame(game.ID).Status)

	for _, userID := range []string{"alice", "bob"} {
		balance, err := s.coins.GetBalance(s.ctx, &coinRepo.GetBalanceInput{UserID: userID})
		s.Require().NoError(err)
		s.Equal(20, balance.Balance)
	}
}

func (s *GameServiceTestSuite) TestChatRoundtrip() {
	game := s.startedGame("alice", "bob")

	_, err := s.svc.PostChatMessage(s.ctx, &PostChatMessageInput{
		GameID:  game.ID,
		UserID:  "alice",
		Content: "good luck everyone",
	})
	s.Require().NoError(err)

	// Spectating group members can read but not post
	_, err = s.svc.PostChatMessage(s.ctx, &PostChatMessageInput{
		GameID:  game.ID,
		UserID:  "carol",
		Content: "hi",
	})
	s.ErrorIs(err, ErrPlayerNotInGame)

	out, err := s.svc.GetChatMessages(s.ctx, &GetChatMessagesInput{GameID: game.ID, UserID: "carol"})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Messages)

	// The log mixes engine announcements with the player message
	var lastText *models.ChatMessage
	systemSeen := false
	for _, msg := range out.Messages {
		switch msg.Type {
		case models.MessageTypeText:
			lastText = msg
		case models.MessageTypeSystem:
			systemSeen = true
		}
	}
	s.True(systemSeen)
	s.Require().NotNil(lastText)
	s.Equal("good luck everyone", lastText.Content)
	s.Equal("alice", lastText.UserID)
}

func (s *GameServiceTestSuite) TestNotificationsLifecycle() {
	game := s.startedGame("alice", "bob")
	_ = game

	out, err := s.svc.GetNotifications(s.ctx, &GetNotificationsInput{UserID: "bob", UnreadOnly: true})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Notifications)
	s.Equal(models.NotificationTypeGameStarted, out.Notifications[0].Type)

	err = s.svc.MarkNotificationRead(s.ctx, &MarkNotificationReadInput{
		UserID:         "bob",
		NotificationID: out.Notifications[0].ID,
	})
	s.Require().NoError(err)

	unread, err := s.svc.GetNotifications(s.ctx, &GetNotificationsInput{UserID: "bob", UnreadOnly: true})
	s.Require().NoError(err)
	for _, n := range unread.Notifications {
		s.NotEqual(out.Notifications[0].ID, n.ID)
	}
}
