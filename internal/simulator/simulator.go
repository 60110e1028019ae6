package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/kmckay/chipmult/internal/deck"
	"github.com/kmckay/chipmult/internal/game"
	"github.com/kmckay/chipmult/internal/randutil"
)

// Config holds configuration for running score simulations
type Config struct {
	Deals    int
	HandSize int
	Seed     int64
	// ModifierChance is the probability in [0,1] that a dealt card carries a
	// random edition, enhancement, or seal.
	ModifierChance float64
	Workers        int
	Logger         *log.Logger
}

// Simulator deals random hands and scores them to build per-hand-type
// frequency and score statistics. Deals are seeded individually, so results
// are reproducible for a given config regardless of worker count.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.HandSize <= 0 {
		config.HandSize = 5
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Simulator{config: config}
}

// TypeStats aggregates the deals that classified as one hand type
type TypeStats struct {
	Count      int
	TotalScore float64
	BestScore  float64
}

// Results holds the aggregated outcome of a simulation run
type Results struct {
	Deals   int
	ByType  map[game.HandType]TypeStats
	Average float64
}

// Run executes the simulation and returns aggregated results
func (s *Simulator) Run() (*Results, error) {
	if s.config.Deals <= 0 {
		return nil, fmt.Errorf("simulator: deals must be positive, got %d", s.config.Deals)
	}

	type outcome struct {
		handType game.HandType
		score    float64
	}
	outcomes := make([]outcome, s.config.Deals)

	var g errgroup.Group
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Deals; i++ {
		g.Go(func() error {
			rng := randutil.New(s.config.Seed + int64(i))
			played := s.deal(rng)

			handType, scoring := game.Classify(played, nil)
			seed := fmt.Sprintf("sim-%d-%d", s.config.Seed, i)
			result := game.Evaluate(handType, scoring, nil, nil, game.NewLevelTracker(), seed)

			outcomes[i] = outcome{handType: handType, score: result.Score()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := &Results{
		Deals:  s.config.Deals,
		ByType: make(map[game.HandType]TypeStats),
	}
	total := 0.0
	for _, o := range outcomes {
		stats := results.ByType[o.handType]
		stats.Count++
		stats.TotalScore += o.score
		if o.score > stats.BestScore {
			stats.BestScore = o.score
		}
		results.ByType[o.handType] = stats
		total += o.score
	}
	results.Average = total / float64(s.config.Deals)

	if s.config.Logger != nil {
		s.config.Logger.Info("Simulation complete",
			"deals", results.Deals, "average", results.Average)
	}
	return results, nil
}

// deal draws a random played hand. Cards are drawn with replacement; this
// game's decks allow duplicates, so that is representative enough for score
// distribution purposes.
func (s *Simulator) deal(rng *rand.Rand) []deck.Card {
	cards := make([]deck.Card, s.config.HandSize)
	for i := range cards {
		card := deck.Card{
			Rank: deck.Rank(rng.IntN(13) + 2),
			Suit: deck.Suits[rng.IntN(len(deck.Suits))],
			ID:   i,
		}
		if rng.Float64() < s.config.ModifierChance {
			switch rng.IntN(3) {
			case 0:
				card.Edition = deck.Edition(rng.IntN(3) + 1)
			case 1:
				card.Enhancement = deck.Enhancement(rng.IntN(8) + 1)
			case 2:
				card.Seal = deck.Seal(rng.IntN(4) + 1)
			}
		}
		cards[i] = card
	}
	return cards
}
