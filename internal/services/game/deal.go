package game

import (
	"context"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
	cardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/card"
	handCardRepo "github.com/nawal123158-wq/kartlichallenge/internal/repositories/hand_card"
)

// dealHand deals a fresh hand of cards to every player in the game.
// Hand 3 deals exclusively from the penalty pool; earlier hands deal two
// cards from the combined normal pools plus exactly one penalty card.
// Pools smaller than requested deal what exists.
func (s *service) dealHand(ctx context.Context, game *models.Game, handNumber int) error {
	// Skip when cards already exist for this hand, so a replayed
	// completion check cannot double-deal
	existing, err := s.config.HandCardRepo.HasCards(ctx, &handCardRepo.HasCardsInput{
		GameID:     game.ID,
		HandNumber: handNumber,
	})
	if err != nil {
		return err
	}

	if existing.HasCards {
		return nil
	}

	penaltyPool, err := s.config.CardRepo.ListByCategories(ctx, &cardRepo.ListByCategoriesInput{
		Categories: []models.CardCategory{models.CardCategoryPenalty},
	})
	if err != nil {
		return err
	}

	var normalPool *cardRepo.ListByCategoriesOutput
	if handNumber < models.MaxHands {
		normalPool, err = s.config.CardRepo.ListByCategories(ctx, &cardRepo.ListByCategoriesInput{
			Categories: models.NormalCategories,
		})
		if err != nil {
			return err
		}
	}

	dealt := make([]*models.HandCard, 0, len(game.Players)*s.config.CardsPerHand)
	for _, userID := range game.Players {
		var picked []*models.Card
		if handNumber == models.MaxHands {
			picked = s.config.Sampler.SampleN(penaltyPool.Cards, s.config.CardsPerHand)
		} else {
			picked = s.config.Sampler.SampleN(normalPool.Cards, s.config.CardsPerHand-1)
			picked = append(picked, s.config.Sampler.SampleN(penaltyPool.Cards, 1)...)
			s.config.Sampler.Shuffle(picked)
		}

		for _, card := range picked {
			dealt = append(dealt, &models.HandCard{
				ID:         s.config.UUIDGenerator.NewUUID(),
				GameID:     game.ID,
				HandNumber: handNumber,
				UserID:     userID,
				CardID:     card.ID,
				Status:     models.HandCardStatusInHand,
			})
		}
	}

	if len(dealt) == 0 {
		return nil
	}

	return s.config.HandCardRepo.DealCards(ctx, &handCardRepo.DealCardsInput{Cards: dealt})
}
