package game

import "fmt"

// HandType is the classified category of a played set of cards. The numeric
// value is the scoring priority: when several categories match the same
// cards, the highest value wins. FlushFive, FlushHouse and FiveOfAKind do not
// exist in standard poker and outrank everything, including a straight flush.
type HandType int

const (
	HighCard HandType = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

// HandTypes lists every hand type from highest to lowest priority
var HandTypes = [12]HandType{
	FlushFive, FlushHouse, FiveOfAKind, StraightFlush, FourOfAKind,
	FullHouse, Flush, Straight, ThreeOfAKind, TwoPair, Pair, HighCard,
}

// String returns a human-readable hand description
func (ht HandType) String() string {
	switch ht {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	case FlushHouse:
		return "Flush House"
	case FlushFive:
		return "Flush Five"
	default:
		return "Unknown"
	}
}

// ParseHandType parses a hand type name as produced by String
func ParseHandType(s string) (HandType, error) {
	for _, ht := range HandTypes {
		if ht.String() == s {
			return ht, nil
		}
	}
	return 0, fmt.Errorf("unknown hand type: %q", s)
}

// BaseScore is a (chips, mult) pair. The final score of a scoring pass is
// Chips × Mult.
type BaseScore struct {
	Chips int
	Mult  float64
}

// baseScores holds the level-1 base values per hand type
var baseScores = map[HandType]BaseScore{
	FlushFive:     {160, 16},
	FlushHouse:    {140, 14},
	FiveOfAKind:   {120, 12},
	StraightFlush: {100, 8},
	FourOfAKind:   {60, 7},
	FullHouse:     {40, 4},
	Flush:         {35, 4},
	Straight:      {30, 4},
	ThreeOfAKind:  {30, 3},
	TwoPair:       {20, 2},
	Pair:          {10, 2},
	HighCard:      {5, 1},
}

// levelBoosts holds the per-level-up increment to a hand type's base pair.
// Each level card played adds exactly one increment.
var levelBoosts = map[HandType]BaseScore{
	FlushFive:     {50, 3},
	FlushHouse:    {40, 4},
	FiveOfAKind:   {35, 3},
	StraightFlush: {40, 4},
	FourOfAKind:   {30, 3},
	FullHouse:     {25, 2},
	Flush:         {15, 2},
	Straight:      {30, 3},
	ThreeOfAKind:  {20, 2},
	TwoPair:       {20, 1},
	Pair:          {15, 1},
	HighCard:      {10, 1},
}

func mustValid(ht HandType) {
	if ht < HighCard || ht > FlushFive {
		panic(fmt.Sprintf("game: invalid hand type %d", int(ht)))
	}
}
