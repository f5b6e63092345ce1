package deck

import (
	"math/rand"
	"time"

	"github.com/nawal123158-wq/kartlichallenge/internal/models"
)

// Sampler provides uniform random card sampling for dealing and swapping
//
//go:generate mockgen -package=mocks -destination=mocks/mock_sampler.go github.com/nawal123158-wq/kartlichallenge/internal/deck Sampler
type Sampler interface {
	// SampleN returns up to n distinct cards drawn uniformly from the pool.
	// A pool smaller than n returns the whole pool (floor, not an error).
	SampleN(pool []*models.Card, n int) []*models.Card

	// SampleExcluding returns one card drawn uniformly from the pool,
	// skipping the given card ID. Returns nil when nothing qualifies.
	SampleExcluding(pool []*models.Card, excludeCardID string) *models.Card

	// Shuffle randomizes the order of cards in place
	Shuffle(cards []*models.Card)
}

// randSampler implements Sampler with a seeded source
type randSampler struct {
	random *rand.Rand
}

// Config for the sampler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new card sampler
func New(cfg *Config) *randSampler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &randSampler{
		random: rand.New(source),
	}
}

// SampleN returns up to n distinct cards drawn uniformly from the pool
func (s *randSampler) SampleN(pool []*models.Card, n int) []*models.Card {
	if n <= 0 || len(pool) == 0 {
		return []*models.Card{}
	}

	if n > len(pool) {
		n = len(pool)
	}

	indexes := s.random.Perm(len(pool))
	picked := make([]*models.Card, 0, n)
	for _, idx := range indexes[:n] {
		picked = append(picked, pool[idx])
	}

	return picked
}

// SampleExcluding returns one card drawn uniformly from the pool, skipping
// the given card ID
func (s *randSampler) SampleExcluding(pool []*models.Card, excludeCardID string) *models.Card {
	eligible := make([]*models.Card, 0, len(pool))
	for _, card := range pool {
		if card.ID != excludeCardID {
			eligible = append(eligible, card)
		}
	}

	if len(eligible) == 0 {
		return nil
	}

	return eligible[s.random.Intn(len(eligible))]
}

// Shuffle randomizes the order of cards in place
func (s *randSampler) Shuffle(cards []*models.Card) {
	s.random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
