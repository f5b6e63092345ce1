package game

import (
	"context"
	"errors"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
	cardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/card"
	gameRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/game"
	handCardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/hand_card"
	penaltyRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/penalty"
	playerRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/player"
	submissionRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/submission"
	"github.com/nawal123158-wq/kartlichallenge/internal/services/messaging"
)

// GetMyCards fetches the caller's current hand
func (s *service) GetMyCards(ctx context.Context, input *GetMyCardsInput) (*GetMyCardsOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	entry, err := s.config.PlayerRepo.GetEntry(ctx, &playerRepo.GetEntryInput{
		GameID: game.ID,
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrEntryNotFound) {
			return nil, ErrPlayerNotInGame
		}
		return nil, err
	}

	if game.Status != models.GameStatusStarted {
		return nil, ErrInvalidGameState
	}

	cards, err := s.config.HandCardRepo.ListForPlayer(ctx, &handCardRepo.ListForPlayerInput{
		GameID:     game.ID,
		HandNumber: game.CurrentHand,
		UserID:     input.UserID,
		InHandOnly: true,
	})
	if err != nil {
		return nil, err
	}

	views, err := s.enrichHandCards(ctx, cards.Cards)
	if err != nil {
		return nil, err
	}

	remaining := s.config.HandTime - s.config.Clock.Now().Sub(game.HandStartedAt)
	if remaining < 0 {
		remaining = 0
	}

	current := game.CurrentPlayer()

	return &GetMyCardsOutput{
		Cards:         views,
		HandNumber:    game.CurrentHand,
		YourTurn:      current == "" || current == input.UserID,
		PassUsed:      entry.PassUsed,
		SwapUsed:      entry.SwapUsed,
		RemainingTime: remaining,
	}, nil
}

// SelectCard pins one in_hand card as the only playable one
func (s *service) SelectCard(ctx context.Context, input *SelectCardInput) (*SelectCardOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, game.ID, input.UserID); err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusStarted {
		return nil, ErrInvalidGameState
	}

	hc, err := s.findInHand(ctx, game, input.UserID, input.CardID)
	if err != nil {
		return nil, err
	}

	err = s.config.HandCardRepo.SetSelected(ctx, &handCardRepo.SetSelectedInput{
		GameID:     game.ID,
		HandNumber: game.CurrentHand,
		UserID:     input.UserID,
		HandCardID: hc.ID,
	})
	if err != nil {
		return nil, err
	}

	return &SelectCardOutput{}, nil
}

// PlayCard acts on a card. Whatever the action, the player commits to a
// single outcome for the hand: the acted card reaches a terminal status,
// the rest of the hand is discarded, the turn advances and the hand
// completion check runs.
func (s *service) PlayCard(ctx context.Context, input *PlayCardInput) (*PlayCardOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, game.ID, input.UserID); err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusStarted {
		return nil, ErrInvalidGameState
	}

	// Empty turn order disables enforcement
	if current := game.CurrentPlayer(); current != "" && current != input.UserID {
		return nil, ErrNotYourTurn
	}

	if s.config.Clock.Now().Sub(game.HandStartedAt) > s.config.HandTime {
		return nil, ErrHandTimeExpired
	}

	hc, err := s.findInHand(ctx, game, input.UserID, input.CardID)
	if err != nil {
		return nil, err
	}

	if err := s.checkSelection(ctx, game, input.UserID, hc); err != nil {
		return nil, err
	}

	output := &PlayCardOutput{}

	switch input.Action {
	case PlayActionPlay:
		sub, err := s.playCard(ctx, game, input, hc)
		if err != nil {
			return nil, err
		}
		output.Submission = sub

	case PlayActionPass:
		if err := s.passCard(ctx, game, input.UserID, hc); err != nil {
			return nil, err
		}

	case PlayActionRefuse:
		card, err := s.refuseCard(ctx, game, input.UserID, hc)
		if err != nil {
			return nil, err
		}
		output.PenaltyCard = card

	default:
		return nil, ErrInvalidPlayAction
	}

	err = s.config.HandCardRepo.DiscardRemaining(ctx, &handCardRepo.DiscardRemainingInput{
		GameID:            game.ID,
		HandNumber:        game.CurrentHand,
		UserID:            input.UserID,
		ExcludeHandCardID: hc.ID,
	})
	if err != nil {
		return nil, err
	}

	err = s.config.GameRepo.AdvanceTurn(ctx, &gameRepo.AdvanceTurnInput{
		GameID: game.ID,
		Now:    s.config.Clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.checkHandCompletion(ctx, game.ID); err != nil {
		return nil, err
	}

	return output, nil
}

// SwapCard spends the one-time swap to replace an in_hand card with a
// random card from the normal pools
func (s *service) SwapCard(ctx context.Context, input *SwapCardInput) (*SwapCardOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, game.ID, input.UserID); err != nil {
		return nil, err
	}

	if game.Status != models.GameStatusStarted {
		return nil, ErrInvalidGameState
	}

	hc, err := s.findInHand(ctx, game, input.UserID, input.CardID)
	if err != nil {
		return nil, err
	}

	used, err := s.config.PlayerRepo.UseFlag(ctx, &playerRepo.UseFlagInput{
		GameID: game.ID,
		UserID: input.UserID,
		Flag:   playerRepo.FlagSwap,
	})
	if err != nil {
		return nil, err
	}

	if !used.Used {
		return nil, ErrSwapAlreadyUsed
	}

	pool, err := s.config.CardRepo.ListByCategories(ctx, &cardRepo.ListByCategoriesInput{
		Categories: models.NormalCategories,
	})
	if err != nil {
		return nil, err
	}

	replacement := s.config.Sampler.SampleExcluding(pool.Cards, input.CardID)
	if replacement == nil {
		return nil, ErrNoReplacementCard
	}

	err = s.config.HandCardRepo.DeleteCard(ctx, &handCardRepo.DeleteCardInput{
		HandCardID: hc.ID,
		GameID:     game.ID,
		HandNumber: game.CurrentHand,
		UserID:     input.UserID,
	})
	if err != nil {
		return nil, err
	}

	newCard := &models.HandCard{
		ID:         s.config.UUIDGenerator.NewUUID(),
		GameID:     game.ID,
		HandNumber: game.CurrentHand,
		UserID:     input.UserID,
		CardID:     replacement.ID,
		Status:     models.HandCardStatusInHand,
	}

	err = s.config.HandCardRepo.DealCards(ctx, &handCardRepo.DealCardsInput{
		Cards: []*models.HandCard{newCard},
	})
	if err != nil {
		return nil, err
	}

	return &SwapCardOutput{
		NewCard: &HandCardView{HandCard: newCard, Card: replacement},
	}, nil
}

// playCard turns the acted card into a pending submission
func (s *service) playCard(ctx context.Context, game *models.Game, input *PlayCardInput, hc *models.HandCard) (*models.Submission, error) {
	marked, err := s.config.HandCardRepo.MarkStatus(ctx, &handCardRepo.MarkStatusInput{
		HandCardID: hc.ID,
		Status:     models.HandCardStatusPlayed,
	})
	if err != nil {
		return nil, err
	}

	if !marked.Marked {
		return nil, ErrCardNotInHand
	}

	sub := &models.Submission{
		ID:          s.config.UUIDGenerator.NewUUID(),
		GameID:      game.ID,
		HandNumber:  game.CurrentHand,
		UserID:      input.UserID,
		CardID:      hc.CardID,
		PhotoBase64: input.PhotoBase64,
		Note:        input.Note,
		Status:      models.SubmissionStatusPending,
		CreatedAt:   s.config.Clock.Now(),
	}

	err = s.config.SubmissionRepo.CreateSubmission(ctx, &submissionRepo.CreateSubmissionInput{
		Submission: sub,
	})
	if err != nil {
		return nil, err
	}

	name := s.displayName(ctx, input.UserID)
	title := s.cardTitle(ctx, hc.CardID)
	msg, err := s.config.Messaging.GetCardPlayedMessage(ctx, &messaging.GetCardPlayedMessageInput{
		PlayerName: name,
		CardTitle:  title,
	})
	if err == nil {
		s.systemMessage(ctx, game.ID, input.UserID, msg.Message, sub.ID)
	}

	s.notifyPlayers(ctx, game, input.UserID, models.NotificationTypeVoteNeeded,
		"Vote needed", name+" played a card. Approve or reject their proof!",
		map[string]string{"game_id": game.ID, "submission_id": sub.ID})

	s.publish(&Event{
		Type:         EventCardPlayed,
		GameID:       game.ID,
		UserID:       input.UserID,
		SubmissionID: sub.ID,
		HandNumber:   game.CurrentHand,
	})

	return sub, nil
}

// passCard spends the one-time pass and discards the card quietly
func (s *service) passCard(ctx context.Context, game *models.Game, userID string, hc *models.HandCard) error {
	used, err := s.config.PlayerRepo.UseFlag(ctx, &playerRepo.UseFlagInput{
		GameID: game.ID,
		UserID: userID,
		Flag:   playerRepo.FlagPass,
	})
	if err != nil {
		return err
	}

	if !used.Used {
		return ErrPassAlreadyUsed
	}

	marked, err := s.config.HandCardRepo.MarkStatus(ctx, &handCardRepo.MarkStatusInput{
		HandCardID: hc.ID,
		Status:     models.HandCardStatusPassed,
	})
	if err != nil {
		return err
	}

	if !marked.Marked {
		return ErrCardNotInHand
	}

	s.systemMessage(ctx, game.ID, userID, s.displayName(ctx, userID)+" passed this hand.", "")
	return nil
}

// refuseCard discards the card and assigns an immediate penalty
func (s *service) refuseCard(ctx context.Context, game *models.Game, userID string, hc *models.HandCard) (*models.Card, error) {
	marked, err := s.config.HandCardRepo.MarkStatus(ctx, &handCardRepo.MarkStatusInput{
		HandCardID: hc.ID,
		Status:     models.HandCardStatusDiscarded,
	})
	if err != nil {
		return nil, err
	}

	if !marked.Marked {
		return nil, ErrCardNotInHand
	}

	return s.assignPenalty(ctx, game, userID, models.PenaltyReasonRefuse)
}

// assignPenalty draws a random penalty card and logs it
func (s *service) assignPenalty(ctx context.Context, game *models.Game, userID string, reason models.PenaltyReason) (*models.Card, error) {
	card, err := s.config.CardRepo.GetRandomCard(ctx, &cardRepo.GetRandomCardInput{
		Category: models.CardCategoryPenalty,
	})
	if err != nil {
		if !errors.Is(err, cardRepo.ErrCardNotFound) {
			return nil, err
		}

		// An unseeded catalog still yields a penalty
		card = &models.Card{
			ID:          "default_penalty",
			Category:    models.CardCategoryPenalty,
			Title:       "House penalty",
			Description: "Do ten push-ups while the table counts along.",
			Difficulty:  1,
		}
	}

	err = s.config.PenaltyRepo.AddPenalty(ctx, &penaltyRepo.AddPenaltyInput{
		Penalty: &models.Penalty{
			ID:        s.config.UUIDGenerator.NewUUID(),
			GameID:    game.ID,
			UserID:    userID,
			CardID:    card.ID,
			Reason:    reason,
			CreatedAt: s.config.Clock.Now(),
		},
	})
	if err != nil {
		return nil, err
	}

	msg, err := s.config.Messaging.GetPenaltyMessage(ctx, &messaging.GetPenaltyMessageInput{
		PlayerName: s.displayName(ctx, userID),
		CardTitle:  card.Title,
		Reason:     reason,
	})
	if err == nil {
		s.systemMessage(ctx, game.ID, userID, msg.Message, "")
	}

	return card, nil
}

// findInHand locates the caller's in_hand card for the current hand
func (s *service) findInHand(ctx context.Context, game *models.Game, userID, cardID string) (*models.HandCard, error) {
	hc, err := s.config.HandCardRepo.FindInHand(ctx, &handCardRepo.FindInHandInput{
		GameID:     game.ID,
		HandNumber: game.CurrentHand,
		UserID:     userID,
		CardID:     cardID,
	})
	if err != nil {
		if errors.Is(err, handCardRepo.ErrHandCardNotFound) {
			return nil, ErrCardNotInHand
		}
		return nil, err
	}

	return hc, nil
}

// checkSelection enforces that a pinned card is the one being acted on
func (s *service) checkSelection(ctx context.Context, game *models.Game, userID string, hc *models.HandCard) error {
	if hc.Selected {
		return nil
	}

	cards, err := s.config.HandCardRepo.ListForPlayer(ctx, &handCardRepo.ListForPlayerInput{
		GameID:     game.ID,
		HandNumber: game.CurrentHand,
		UserID:     userID,
		InHandOnly: true,
	})
	if err != nil {
		return err
	}

	for _, other := range cards.Cards {
		if other.Selected && other.ID != hc.ID {
			return ErrMustPlaySelected
		}
	}

	return nil
}

// enrichHandCards joins dealt cards with their catalog entries
func (s *service) enrichHandCards(ctx context.Context, cards []*models.HandCard) ([]*HandCardView, error) {
	ids := make([]string, 0, len(cards))
	for _, hc := range cards {
		ids = append(ids, hc.CardID)
	}

	catalog, err := s.config.CardRepo.GetCards(ctx, &cardRepo.GetCardsInput{CardIDs: ids})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Card, len(catalog.Cards))
	for _, c := range catalog.Cards {
		byID[c.ID] = c
	}

	views := make([]*HandCardView, 0, len(cards))
	for _, hc := range cards {
		views = append(views, &HandCardView{
			HandCard: hc,
			Card:     byID[hc.CardID],
		})
	}

	return views, nil
}

// cardTitle resolves a catalog card's title, falling back to the ID
func (s *service) cardTitle(ctx context.Context, cardID string) string {
	card, err := s.config.CardRepo.GetCard(ctx, &cardRepo.GetCardInput{CardID: cardID})
	if err != nil {
		return cardID
	}

	return card.Title
}
