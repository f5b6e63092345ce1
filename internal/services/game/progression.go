package game

import (
	"context"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
	cardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/card"
	coinRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/coin_ledger"
	gameRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/game"
	handCardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/hand_card"
	penaltyRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/penalty"
	playerRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/player"
	submissionRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/submission"
	"github.com/nawal123158-wq/kartlichallenge/internal/services/messaging"
)

// checkHandCompletion advances the game when the current hand is done. A
// hand is done once no card is still in_hand and no submission for the
// hand is still pending. Each step is its own atomic write; a crash
// between steps is healed by the next invocation.
func (s *service) checkHandCompletion(ctx context.Context, gameID string) error {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Status != models.GameStatusStarted {
		return nil
	}

	inHand, err := s.config.HandCardRepo.CountInHand(ctx, &handCardRepo.CountInHandInput{
		GameID:     game.ID,
		HandNumber: game.CurrentHand,
	})
	if err != nil {
		return err
	}

	if inHand.Count > 0 {
		return nil
	}

	pending, err := s.config.SubmissionRepo.CountPending(ctx, &submissionRepo.CountPendingInput{
		GameID:     game.ID,
		HandNumber: game.CurrentHand,
	})
	if err != nil {
		return err
	}

	if pending.Count > 0 {
		return nil
	}

	if game.CurrentHand+1 > models.MaxHands {
		return s.finishGame(ctx, game)
	}

	return s.advanceHand(ctx, game)
}

// advanceHand moves the game to the next hand and deals it
func (s *service) advanceHand(ctx context.Context, game *models.Game) error {
	now := s.config.Clock.Now()
	out, err := s.config.GameRepo.AdvanceHand(ctx, &gameRepo.AdvanceHandInput{
		GameID:   game.ID,
		FromHand: game.CurrentHand,
		Now:      now,
	})
	if err != nil {
		return err
	}

	if !out.Advanced {
		return nil
	}

	fresh, err := s.getGame(ctx, game.ID)
	if err != nil {
		return err
	}

	if err := s.dealHand(ctx, fresh, out.NextHand); err != nil {
		return err
	}

	msg, err := s.config.Messaging.GetHandStartedMessage(ctx, &messaging.GetHandStartedMessageInput{
		HandNumber:  out.NextHand,
		PenaltyOnly: out.NextHand == models.MaxHands,
	})
	if err == nil {
		s.systemMessage(ctx, game.ID, game.CreatedBy, msg.Message, "")
	}

	s.publish(&Event{
		Type:       EventHandAdvanced,
		GameID:     game.ID,
		HandNumber: out.NextHand,
	})

	return nil
}

// finishGame marks the game finished and pays out coin bonuses. The
// compare-and-set on the game status guarantees a single payout even when
// two completion checks race.
func (s *service) finishGame(ctx context.Context, game *models.Game) error {
	now := s.config.Clock.Now()
	out, err := s.config.GameRepo.FinishGame(ctx, &gameRepo.FinishGameInput{
		GameID: game.ID,
		Now:    now,
	})
	if err != nil {
		return err
	}

	if !out.Finished {
		return nil
	}

	entries, err := s.config.PlayerRepo.ListEntries(ctx, &playerRepo.ListEntriesInput{
		GameID: game.ID,
	})
	if err != nil {
		return err
	}

	topScore := 0
	for _, entry := range entries.Entries {
		if entry.Score > topScore {
			topScore = entry.Score
		}
	}

	winners := make([]string, 0, 1)
	for _, entry := range entries.Entries {
		amount := s.config.ParticipationCoins
		reason := models.CoinReasonGameParticipation
		if entry.Score == topScore {
			amount = s.config.WinBonusCoins
			reason = models.CoinReasonGameWin
			winners = append(winners, s.displayName(ctx, entry.UserID))
		}

		err = s.config.CoinRepo.AddCoins(ctx, &coinRepo.AddCoinsInput{
			Transaction: &models.CoinTransaction{
				ID:        s.config.UUIDGenerator.NewUUID(),
				UserID:    entry.UserID,
				Amount:    amount,
				Reason:    reason,
				GameID:    game.ID,
				CreatedAt: now,
			},
		})
		if err != nil {
			return err
		}
	}

	msg, err := s.config.Messaging.GetGameFinishedMessage(ctx, &messaging.GetGameFinishedMessageInput{
		WinnerNames: winners,
		TopScore:    topScore,
	})
	if err == nil {
		s.systemMessage(ctx, game.ID, game.CreatedBy, msg.Message, "")
	}

	s.publish(&Event{
		Type:   EventGameFinished,
		GameID: game.ID,
	})

	return nil
}

// GetPenalties lists a game's penalty log
func (s *service) GetPenalties(ctx context.Context, input *GetPenaltiesInput) (*GetPenaltiesOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if err := s.requireGroupMember(ctx, game.GroupID, input.UserID); err != nil {
		return nil, err
	}

	out, err := s.config.PenaltyRepo.ListByGame(ctx, &penaltyRepo.ListByGameInput{
		GameID: game.ID,
	})
	if err != nil {
		return nil, err
	}

	views := make([]*PenaltyView, 0, len(out.Penalties))
	for _, p := range out.Penalties {
		view := &PenaltyView{Penalty: p}

		card, err := s.config.CardRepo.GetCard(ctx, &cardRepo.GetCardInput{CardID: p.CardID})
		if err == nil {
			view.Card = card
		}

		views = append(views, view)
	}

	return &GetPenaltiesOutput{Penalties: views}, nil
}
