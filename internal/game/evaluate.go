package game

import (
	"github.com/kmckay/chipmult/internal/deck"
	"github.com/kmckay/chipmult/internal/randutil"
)

// Result is the outcome of a scoring pass
type Result struct {
	Chips int
	Mult  float64
}

// Score combines the two accumulators into the final hand score
func (r Result) Score() float64 {
	return float64(r.Chips) * r.Mult
}

// EventSink receives scoring events a host may want to act on. The core only
// computes chips and mult; currency payouts (Gold seals, Gold cards, Lucky
// money rolls) and card lifecycle effects (Glass breakage) are host concerns
// hanging off these events.
type EventSink interface {
	// CardScored fires after each scoring card finishes its repetitions,
	// with the accumulator state at that point.
	CardScored(card deck.Card, chips int, mult float64)
	// LuckyRoll fires once per Lucky card with its roll and whether it hit.
	LuckyRoll(card deck.Card, index int, roll float64, hit bool)
}

// Evaluate runs a scoring pass: it reads the base pair for the hand type
// from the tracker, applies every scoring card's effects strictly in the
// order given, then applies held-card effects, and returns the final
// accumulators.
//
// Card order is load-bearing. Editions and enhancements mix additive and
// multiplicative operators, so the same cards in a different order produce a
// different mult. Callers must pass the scoring cards exactly as returned by
// Classify.
//
// The seed drives Lucky card rolls: the Nth Lucky card processed in the pass
// consumes roll N (zero-based), regardless of which card it is. A Red seal
// repeats a card's effect block twice but does not advance the Lucky roll;
// both repetitions see the same roll.
func Evaluate(handType HandType, scoring, held []deck.Card, abilities AbilitySet, tracker *LevelTracker, seed string) Result {
	return EvaluateObserved(handType, scoring, held, abilities, tracker, seed, nil)
}

// EvaluateObserved is Evaluate with scoring events reported to sink. A nil
// sink is valid.
func EvaluateObserved(handType HandType, scoring, held []deck.Card, abilities AbilitySet, tracker *LevelTracker, seed string, sink EventSink) Result {
	base := tracker.BaseScore(handType)
	chips, mult := base.Chips, base.Mult

	// Ability effects run before any card scores. None of the modeled
	// abilities change the accumulators yet; the call anchors the pipeline
	// order (abilities, then played cards, then held cards) for when they do.
	chips, mult = activateAbilities(abilities, chips, mult)

	luckyCount := 0
	for _, card := range scoring {
		repeats := 1
		if card.Seal == deck.RedSeal {
			repeats = 2
		}

		luckyRolled := false
		var luckyHit bool
		for rep := 0; rep < repeats; rep++ {
			chips += card.Chips()

			switch card.Edition {
			case deck.Foil:
				chips += 50
			case deck.Holographic:
				mult += 10
			case deck.Polychrome:
				mult *= 1.5
			}

			switch card.Enhancement {
			case deck.Bonus:
				chips += 30
			case deck.Mult:
				mult += 4
			case deck.Glass:
				mult *= 2
			case deck.Stone:
				// A stone card contributes a flat 50 chips whatever its
				// nominal rank; correct the rank value added above.
				chips += 50 - card.Chips()
			case deck.Lucky:
				if !luckyRolled {
					roll := randutil.LuckyRoll(seed, luckyCount)
					luckyHit = roll < 0.2
					if sink != nil {
						sink.LuckyRoll(card, luckyCount, roll, luckyHit)
					}
					luckyCount++
					luckyRolled = true
				}
				if luckyHit {
					mult += 20
				}
			}
		}

		if sink != nil {
			sink.CardScored(card, chips, mult)
		}
	}

	for _, card := range held {
		repeats := 1
		if card.Seal == deck.RedSeal {
			repeats = 2
		}
		for rep := 0; rep < repeats; rep++ {
			if card.Enhancement == deck.Steel {
				mult *= 1.5
			}
		}
	}

	return Result{Chips: chips, Mult: mult}
}

// activateAbilities is the extension point for ability chip/mult effects.
// Shape-relaxing abilities like FourFingers act in Classify instead; nothing
// modeled here touches the accumulators.
func activateAbilities(abilities AbilitySet, chips int, mult float64) (int, float64) {
	return chips, mult
}
