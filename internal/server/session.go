package server

import (
	"fmt"

	"github.com/kmckay/chipmult/internal/deck"
	"github.com/kmckay/chipmult/internal/game"
)

// Session is the scoring state for one connected client: a level tracker
// that lives as long as the connection. All calls come from the connection's
// read pump, so no locking is needed.
type Session struct {
	tracker *game.LevelTracker
}

// NewSession creates a session with a fresh tracker
func NewSession() *Session {
	return &Session{tracker: game.NewLevelTracker()}
}

// Score classifies and scores a played hand against the session's tracker
func (s *Session) Score(req ScoreData) (*ScoreResultData, error) {
	if len(req.Cards) == 0 {
		return nil, fmt.Errorf("no cards played")
	}

	played, err := parseCardList(req.Cards)
	if err != nil {
		return nil, fmt.Errorf("played cards: %w", err)
	}
	held, err := parseCardList(req.Held)
	if err != nil {
		return nil, fmt.Errorf("held cards: %w", err)
	}

	abilities := game.AbilitySet{}
	for _, name := range req.Abilities {
		ability, err := game.ParseAbility(name)
		if err != nil {
			return nil, err
		}
		abilities[ability] = true
	}

	handType, scoring := game.Classify(played, abilities)
	var rolls rollRecorder
	result := game.EvaluateObserved(handType, scoring, held, abilities, s.tracker, req.Seed, &rolls)

	scoringCards := make([]string, len(scoring))
	for i, c := range scoring {
		scoringCards[i] = c.String()
	}

	return &ScoreResultData{
		HandType:     handType.String(),
		ScoringCards: scoringCards,
		Chips:        result.Chips,
		Mult:         result.Mult,
		Score:        result.Score(),
		LuckyRolls:   rolls.rolls,
	}, nil
}

// rollRecorder collects Lucky card draws so score results can report them
type rollRecorder struct {
	rolls []LuckyRoll
}

func (r *rollRecorder) CardScored(deck.Card, int, float64) {}

func (r *rollRecorder) LuckyRoll(card deck.Card, index int, roll float64, hit bool) {
	r.rolls = append(r.rolls, LuckyRoll{
		Card:  card.String(),
		Index: index,
		Roll:  roll,
		Hit:   hit,
	})
}

// Level applies one level card to the named hand type
func (s *Session) Level(req LevelData) (*LevelResultData, error) {
	handType, err := game.ParseHandType(req.HandType)
	if err != nil {
		return nil, err
	}

	s.tracker.ApplyLevelCard(handType)
	base := s.tracker.BaseScore(handType)

	return &LevelResultData{
		HandType: handType.String(),
		Level:    s.tracker.Level(handType),
		Chips:    base.Chips,
		Mult:     base.Mult,
	}, nil
}

func parseCardList(notations []string) ([]deck.Card, error) {
	cards := make([]deck.Card, 0, len(notations))
	for i, n := range notations {
		card, err := deck.ParseCard(n)
		if err != nil {
			return nil, err
		}
		card.ID = i
		cards = append(cards, card)
	}
	return cards, nil
}
