package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetPlayerJoinedMessage returns a message for a player joining a game
func (s *service) GetPlayerJoinedMessage(ctx context.Context, input *GetPlayerJoinedMessageInput) (*GetPlayerJoinedMessageOutput, error) {
	messages := []string{
		"%s is in! Shuffle up.",
		"%s joined the table. Things just got interesting.",
		"Make room, %s is playing.",
		"%s stepped up. Who's next?",
	}

	return &GetPlayerJoinedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName),
	}, nil
}

// GetGameStartedMessage returns a message for a game starting
func (s *service) GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error) {
	messages := []string{
		"Game on! %d players, three hands, no mercy.",
		"We have %d players. Let the dares begin!",
		"Cards are hot and %d players are ready. Good luck!",
	}

	return &GetGameStartedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerCount),
	}, nil
}

// GetHandStartedMessage returns a message for a new hand beginning
func (s *service) GetHandStartedMessage(ctx context.Context, input *GetHandStartedMessageInput) (*GetHandStartedMessageOutput, error) {
	if input.PenaltyOnly {
		messages := []string{
			"Hand %d: penalty round! Nowhere to hide now.",
			"Final hand %d. Every card is a penalty card. Enjoy.",
			"Hand %d is all penalties. This is where friendships end.",
		}
		return &GetHandStartedMessageOutput{
			Message: fmt.Sprintf(s.pick(messages), input.HandNumber),
		}, nil
	}

	messages := []string{
		"Hand %d is dealt. Pick your poison.",
		"Fresh cards for hand %d. Make them count!",
		"Hand %d begins. The clock is ticking.",
	}

	return &GetHandStartedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.HandNumber),
	}, nil
}

// GetCardPlayedMessage returns a message for a played card awaiting votes
func (s *service) GetCardPlayedMessage(ctx context.Context, input *GetCardPlayedMessageInput) (*GetCardPlayedMessageOutput, error) {
	messages := []string{
		"%s claims to have done \"%s\". Believe it? Vote!",
		"%s played \"%s\" and wants your verdict.",
		"Proof is in from %s for \"%s\". Judges, to your phones!",
	}

	return &GetCardPlayedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.CardTitle),
	}, nil
}

// GetSubmissionApprovedMessage returns a message for an approved submission
func (s *service) GetSubmissionApprovedMessage(ctx context.Context, input *GetSubmissionApprovedMessageInput) (*GetSubmissionApprovedMessageOutput, error) {
	messages := []string{
		"The people have spoken: %s gets %d points!",
		"Approved! %s banks %d points.",
		"%s pulled it off. %d points on the board.",
	}

	return &GetSubmissionApprovedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.Points),
	}, nil
}

// GetSubmissionRejectedMessage returns a message for a rejected submission
func (s *service) GetSubmissionRejectedMessage(ctx context.Context, input *GetSubmissionRejectedMessageInput) (*GetSubmissionRejectedMessageOutput, error) {
	messages := []string{
		"Rejected! %s, the jury was not impressed.",
		"Tough crowd. %s's proof didn't make the cut.",
		"Denied. %s owes the table a penalty.",
	}

	return &GetSubmissionRejectedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName),
	}, nil
}

// GetPenaltyMessage returns a message for an assigned penalty card
func (s *service) GetPenaltyMessage(ctx context.Context, input *GetPenaltyMessageInput) (*GetPenaltyMessageOutput, error) {
	var messages []string
	if input.Reason == models.PenaltyReasonRefuse {
		messages = []string{
			"%s chickened out and drew \"%s\". Ouch.",
			"Refusal noted. %s now has to face \"%s\".",
			"%s said no thanks, so the deck said \"%s\".",
		}
	} else {
		messages = []string{
			"The vote failed, so %s draws \"%s\".",
			"Rejection comes with a price: %s gets \"%s\".",
			"%s's punishment has arrived: \"%s\".",
		}
	}

	return &GetPenaltyMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.CardTitle),
	}, nil
}

// GetGameFinishedMessage returns the final standings message
func (s *service) GetGameFinishedMessage(ctx context.Context, input *GetGameFinishedMessageInput) (*GetGameFinishedMessageOutput, error) {
	winners := strings.Join(input.WinnerNames, ", ")
	if winners == "" {
		winners = "nobody"
	}

	if len(input.WinnerNames) > 1 {
		messages := []string{
			"Game over! Shared glory for %s with %d points.",
			"It's a tie! %s finish on top with %d points.",
		}
		return &GetGameFinishedMessageOutput{
			Message: fmt.Sprintf(s.pick(messages), winners, input.TopScore),
		}, nil
	}

	messages := []string{
		"Game over! %s takes it with %d points.",
		"All hands played. Crown goes to %s with %d points!",
		"That's a wrap. %s wins with %d points.",
	}

	return &GetGameFinishedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), winners, input.TopScore),
	}, nil
}
