package game

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
	chatRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/chat"
	gameRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/game"
	groupRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/group"
	notificationRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/notification"
	playerRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/player"
	userRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/user"
	"github.com/nawal123158-wq/kartlichallenge/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	config *Config
}

// NewService creates a new game service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch {
	case cfg.GameRepo == nil:
		return nil, ErrNilGameRepo
	case cfg.PlayerRepo == nil:
		return nil, ErrNilPlayerRepo
	case cfg.HandCardRepo == nil:
		return nil, ErrNilHandCardRepo
	case cfg.CardRepo == nil:
		return nil, ErrNilCardRepo
	case cfg.SubmissionRepo == nil:
		return nil, ErrNilSubmissionRepo
	case cfg.PenaltyRepo == nil:
		return nil, ErrNilPenaltyRepo
	case cfg.GroupRepo == nil:
		return nil, ErrNilGroupRepo
	case cfg.ChatRepo == nil:
		return nil, ErrNilChatRepo
	case cfg.NotificationRepo == nil:
		return nil, ErrNilNotificationRepo
	case cfg.UserRepo == nil:
		return nil, ErrNilUserRepo
	case cfg.CoinRepo == nil:
		return nil, ErrNilCoinRepo
	case cfg.Sampler == nil:
		return nil, ErrNilSampler
	case cfg.Clock == nil:
		return nil, ErrNilClock
	case cfg.UUIDGenerator == nil:
		return nil, ErrNilUUIDGenerator
	case cfg.Messaging == nil:
		return nil, ErrNilMessaging
	}

	// Set default values if not provided
	if cfg.MinVotesRequired == 0 {
		cfg.MinVotesRequired = 2
	}
	if cfg.VoteTimeout == 0 {
		cfg.VoteTimeout = 60 * time.Second
	}
	if cfg.HandTime == 0 {
		cfg.HandTime = 60 * time.Second
	}
	if cfg.CardsPerHand == 0 {
		cfg.CardsPerHand = 3
	}
	if cfg.AutoStartPlayers == 0 {
		cfg.AutoStartPlayers = 2
	}
	if cfg.WinBonusCoins == 0 {
		cfg.WinBonusCoins = 20
	}
	if cfg.ParticipationCoins == 0 {
		cfg.ParticipationCoins = 5
	}

	return &service{
		config: cfg,
	}, nil
}

// CreateGame creates a new waiting game in a group and joins the creator
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if err := s.requireGroupMember(ctx, input.GroupID, input.UserID); err != nil {
		return nil, err
	}

	if err := s.leaveOtherActiveGames(ctx, input.GroupID, input.UserID, ""); err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	created, err := s.config.GameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
		GameID:    s.config.UUIDGenerator.NewUUID(),
		GroupID:   input.GroupID,
		CreatedBy: input.UserID,
		Now:       now,
	})
	if err != nil {
		return nil, err
	}

	game, err := s.addPlayer(ctx, created.Game, input.UserID, now)
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{Game: game}, nil
}

// JoinGame adds a player to a game, leaving any other active game in the
// same group
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireGroupMember(ctx, game.GroupID, input.UserID); err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusWaiting && game.Status != models.GameStatusReady {
		return nil, ErrInvalidGameState
	}

	if err := s.leaveOtherActiveGames(ctx, game.GroupID, input.UserID, game.ID); err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	game, err = s.addPlayer(ctx, game, input.UserID, now)
	if err != nil {
		return nil, err
	}

	// Auto-start once enough players are seated
	autoStarted := false
	count, err := s.config.PlayerRepo.CountPlayers(ctx, &playerRepo.CountPlayersInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	if count.Count >= s.config.AutoStartPlayers {
		autoStarted, err = s.startGame(ctx, game.ID)
		if err != nil {
			return nil, err
		}

		game, err = s.getGame(ctx, game.ID)
		if err != nil {
			return nil, err
		}
	}

	return &JoinGameOutput{Game: game, AutoStarted: autoStarted}, nil
}

// StartGame explicitly starts a waiting game
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.CreatedBy != input.UserID {
		return nil, ErrNotCreator
	}

	if game.Status != models.GameStatusWaiting && game.Status != models.GameStatusReady {
		return nil, ErrInvalidGameState
	}

	count, err := s.config.PlayerRepo.CountPlayers(ctx, &playerRepo.CountPlayersInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	if count.Count < 2 {
		return nil, ErrNotEnoughPlayers
	}

	started, err := s.startGame(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	if !started {
		return nil, ErrInvalidGameState
	}

	game, err = s.getGame(ctx, game.ID)
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{Game: game}, nil
}

// GetGame fetches a game's state for a participant
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireGroupMember(ctx, game.GroupID, input.UserID); err != nil {
		return nil, err
	}

	entries, err := s.config.PlayerRepo.ListEntries(ctx, &playerRepo.ListEntriesInput{GameID: game.ID})
	if err != nil {
		return nil, err
	}

	players := make([]*PlayerState, 0, len(entries.Entries))
	for _, entry := range entries.Entries {
		state := &PlayerState{
			UserID:   entry.UserID,
			Score:    entry.Score,
			PassUsed: entry.PassUsed,
			SwapUsed: entry.SwapUsed,
		}

		u, err := s.config.UserRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: entry.UserID})
		if err == nil {
			state.Name = u.Name
			state.Picture = u.Picture
		} else if !errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, err
		}

		players = append(players, state)
	}

	return &GetGameOutput{
		Game:          game,
		Players:       players,
		CurrentPlayer: game.CurrentPlayer(),
	}, nil
}

// PostChatMessage appends a player message to a game's chat log
func (s *service) PostChatMessage(ctx context.Context, input *PostChatMessageInput) (*PostChatMessageOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, game.ID, input.UserID); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		ID:        s.config.UUIDGenerator.NewUUID(),
		GameID:    game.ID,
		UserID:    input.UserID,
		Content:   input.Content,
		Type:      models.MessageTypeText,
		CreatedAt: s.config.Clock.Now(),
	}

	if err := s.config.ChatRepo.AddMessage(ctx, &chatRepo.AddMessageInput{Message: msg}); err != nil {
		return nil, err
	}

	s.publish(&Event{
		Type:    EventChatMessage,
		GameID:  game.ID,
		UserID:  input.UserID,
		Message: input.Content,
	})

	return &PostChatMessageOutput{Message: msg}, nil
}

// GetChatMessages reads a game's chat log
func (s *service) GetChatMessages(ctx context.Context, input *GetChatMessagesInput) (*GetChatMessagesOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireGroupMember(ctx, game.GroupID, input.UserID); err != nil {
		return nil, err
	}

	out, err := s.config.ChatRepo.ListByGame(ctx, &chatRepo.ListByGameInput{
		GameID: game.ID,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetChatMessagesOutput{Messages: out.Messages}, nil
}

// GetNotifications lists the caller's notifications
func (s *service) GetNotifications(ctx context.Context, input *GetNotificationsInput) (*GetNotificationsOutput, error) {
	out, err := s.config.NotificationRepo.ListByUser(ctx, &notificationRepo.ListByUserInput{
		UserID:     input.UserID,
		UnreadOnly: input.UnreadOnly,
	})
	if err != nil {
		return nil, err
	}

	return &GetNotificationsOutput{Notifications: out.Notifications}, nil
}

// MarkNotificationRead flags one of the caller's notifications as seen
func (s *service) MarkNotificationRead(ctx context.Context, input *MarkNotificationReadInput) error {
	return s.config.NotificationRepo.MarkRead(ctx, &notificationRepo.MarkReadInput{
		UserID:         input.UserID,
		NotificationID: input.NotificationID,
	})
}

// getGame loads a game, mapping the repository sentinel
func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.config.GameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return game, nil
}

// requireGroupMember checks the caller belongs to the game's group
func (s *service) requireGroupMember(ctx context.Context, groupID, userID string) error {
	out, err := s.config.GroupRepo.IsMember(ctx, &groupRepo.IsMemberInput{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		return err
	}

	if !out.Member {
		return ErrNotGroupMember
	}

	return nil
}

// requireParticipant checks the caller has a player entry in the game
func (s *service) requireParticipant(ctx context.Context, gameID, userID string) error {
	_, err := s.config.PlayerRepo.GetEntry(ctx, &playerRepo.GetEntryInput{
		GameID: gameID,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrEntryNotFound) {
			return ErrPlayerNotInGame
		}
		return err
	}

	return nil
}

// addPlayer seats a player in a game with set semantics
func (s *service) addPlayer(ctx context.Context, game *models.Game, userID string, now time.Time) (*models.Game, error) {
	added, err := s.config.GameRepo.AddPlayer(ctx, &gameRepo.AddPlayerInput{
		GameID: game.ID,
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}

	if !added.Added {
		return nil, ErrPlayerAlreadyInGame
	}

	_, err = s.config.PlayerRepo.CreateEntry(ctx, &playerRepo.CreateEntryInput{
		Entry: &models.PlayerEntry{
			ID:       s.config.UUIDGenerator.NewUUID(),
			GameID:   game.ID,
			UserID:   userID,
			JoinedAt: now,
		},
	})
	if err != nil {
		return nil, err
	}

	s.announcePlayerJoined(ctx, game.ID, userID)
	s.publish(&Event{
		Type:   EventPlayerJoined,
		GameID: game.ID,
		UserID: userID,
	})

	return s.getGame(ctx, game.ID)
}

// leaveOtherActiveGames enforces one active game per player per group
func (s *service) leaveOtherActiveGames(ctx context.Context, groupID, userID, keepGameID string) error {
	active, err := s.config.GameRepo.GetActiveGamesByGroup(ctx, &gameRepo.GetActiveGamesByGroupInput{
		GroupID: groupID,
	})
	if err != nil {
		return err
	}

	for _, g := range active.Games {
		if g.ID == keepGameID {
			continue
		}

		seated := false
		for _, id := range g.Players {
			if id == userID {
				seated = true
				break
			}
		}
		if !seated {
			continue
		}

		err = s.config.GameRepo.RemovePlayer(ctx, &gameRepo.RemovePlayerInput{
			GameID: g.ID,
			UserID: userID,
		})
		if err != nil {
			return err
		}

		err = s.config.PlayerRepo.DeleteEntry(ctx, &playerRepo.DeleteEntryInput{
			GameID: g.ID,
			UserID: userID,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// startGame performs the waiting -> started transition and deals hand 1.
// Returns false when another caller already started the game.
func (s *service) startGame(ctx context.Context, gameID string) (bool, error) {
	now := s.config.Clock.Now()
	out, err := s.config.GameRepo.StartGame(ctx, &gameRepo.StartGameInput{
		GameID: gameID,
		Now:    now,
	})
	if err != nil {
		return false, err
	}

	if !out.Started {
		return false, nil
	}

	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return false, err
	}

	if err := s.dealHand(ctx, game, 1); err != nil {
		return false, err
	}

	msg, err := s.config.Messaging.GetGameStartedMessage(ctx, &messaging.GetGameStartedMessageInput{
		PlayerCount: len(game.Players),
	})
	if err == nil {
		s.systemMessage(ctx, game.ID, game.CreatedBy, msg.Message, "")
	}

	s.notifyPlayers(ctx, game, "", models.NotificationTypeGameStarted,
		"Game started", "Your game is on. Check your hand!",
		map[string]string{"game_id": game.ID})

	s.publish(&Event{
		Type:       EventGameStarted,
		GameID:     game.ID,
		HandNumber: 1,
	})

	return true, nil
}

// systemMessage drops an engine announcement into game chat.
// Chat is an audit channel; failures are logged and not propagated.
func (s *service) systemMessage(ctx context.Context, gameID, userID, content, submissionID string) {
	err := s.config.ChatRepo.AddMessage(ctx, &chatRepo.AddMessageInput{
		Message: &models.ChatMessage{
			ID:           s.config.UUIDGenerator.NewUUID(),
			GameID:       gameID,
			UserID:       userID,
			Content:      content,
			Type:         models.MessageTypeSystem,
			SubmissionID: submissionID,
			CreatedAt:    s.config.Clock.Now(),
		},
	})
	if err != nil {
		log.Printf("failed to write system chat message for game %s: %v", gameID, err)
	}
}

// notifyPlayers fans a notification out to every player except one.
// Delivery is fire-and-forget.
func (s *service) notifyPlayers(ctx context.Context, game *models.Game, exceptUserID string, nType models.NotificationType, title, message string, data map[string]string) {
	for _, userID := range game.Players {
		if userID == exceptUserID {
			continue
		}

		err := s.config.NotificationRepo.AddNotification(ctx, &notificationRepo.AddNotificationInput{
			Notification: &models.Notification{
				ID:        s.config.UUIDGenerator.NewUUID(),
				UserID:    userID,
				Type:      nType,
				Title:     title,
				Message:   message,
				Data:      data,
				CreatedAt: s.config.Clock.Now(),
			},
		})
		if err != nil {
			log.Printf("failed to notify user %s: %v", userID, err)
		}
	}
}

// publish sends an event to the live feed when one is configured
func (s *service) publish(event *Event) {
	if s.config.Events != nil {
		s.config.Events.Publish(event)
	}
}

// announcePlayerJoined writes the join announcement to game chat
func (s *service) announcePlayerJoined(ctx context.Context, gameID, userID string) {
	name := s.displayName(ctx, userID)
	msg, err := s.config.Messaging.GetPlayerJoinedMessage(ctx, &messaging.GetPlayerJoinedMessageInput{
		PlayerName: name,
	})
	if err != nil {
		return
	}

	s.systemMessage(ctx, gameID, userID, msg.Message, "")
}

// displayName resolves a user's name, falling back to the raw ID
func (s *service) displayName(ctx context.Context, userID string) string {
	u, err := s.config.UserRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil || u.Name == "" {
		return userID
	}

	return u.Name
}
