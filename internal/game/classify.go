package game

import (
	"sort"

	"github.com/kmckay/chipmult/internal/deck"
)

// Classify determines the hand type formed by the played cards and the subset
// of them that will score, in the exact order they were played.
//
// Stone cards have no usable rank or suit, so they are excluded from shape
// detection entirely, but they always score: they are appended to the scoring
// cards last, sorted by descending rank. The remaining cards are matched
// against hand shapes on a rank-sorted working copy; membership is decided
// there and then mapped back to the caller's play order, because scoring is
// order-sensitive downstream.
//
// The played slice is never modified. Classify panics on an empty hand, which
// is a caller bug.
func Classify(played []deck.Card, abilities AbilitySet) (HandType, []deck.Card) {
	if len(played) == 0 {
		panic("game: Classify called with empty hand")
	}

	var rest, stones []indexedCard
	for i, c := range played {
		ic := indexedCard{Card: c, pos: i}
		if c.Enhancement == deck.Stone {
			stones = append(stones, ic)
		} else {
			rest = append(rest, ic)
		}
	}

	// Working copy sorted by descending rank. The sort is stable so cards of
	// equal rank keep their play order, which matters for high-card ties.
	sorted := make([]indexedCard, len(rest))
	copy(sorted, rest)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	handType, matched := matchHand(sorted, abilities)

	scoring := reconcile(rest, matched)

	sort.SliceStable(stones, func(i, j int) bool {
		return stones[i].Rank > stones[j].Rank
	})
	for _, s := range stones {
		scoring = append(scoring, s.Card)
	}

	return handType, scoring
}

// indexedCard pairs a card with its slot in the played sequence. Matching
// works on identity via pos, so two otherwise identical cards stay
// distinguishable.
type indexedCard struct {
	deck.Card
	pos int
}

// matchHand evaluates the shape predicates in strict priority order against
// the rank-sorted working copy and returns the first match. The returned
// cards still reference the sorted copy; callers must reconcile them back to
// play order before scoring.
func matchHand(sorted []indexedCard, abilities AbilitySet) (HandType, []indexedCard) {
	if cards, ok := isFlushFive(sorted); ok {
		return FlushFive, cards
	}
	if cards, ok := isFlushHouse(sorted); ok {
		return FlushHouse, cards
	}
	if cards, ok := isFiveOfAKind(sorted); ok {
		return FiveOfAKind, cards
	}
	if cards, ok := isStraightFlush(sorted, abilities); ok {
		return StraightFlush, cards
	}
	if cards, ok := isFourOfAKind(sorted); ok {
		return FourOfAKind, cards
	}
	if cards, ok := isFullHouse(sorted); ok {
		return FullHouse, cards
	}
	if cards, ok := isFlush(sorted, abilities); ok {
		return Flush, cards
	}
	if cards, ok := isStraight(sorted, abilities); ok {
		return Straight, cards
	}
	if cards, ok := isThreeOfAKind(sorted); ok {
		return ThreeOfAKind, cards
	}
	if cards, ok := isTwoPair(sorted); ok {
		return TwoPair, cards
	}
	if cards, ok := isPair(sorted); ok {
		return Pair, cards
	}
	return HighCard, highCard(sorted)
}

// reconcile filters the play-order sequence down to the matched cards. The
// matched set references the sorted working copy, so membership is taken by
// original slot, not by value.
func reconcile(rest, matched []indexedCard) []deck.Card {
	member := make(map[int]bool, len(matched))
	for _, m := range matched {
		member[m.pos] = true
	}

	scoring := make([]deck.Card, 0, len(matched))
	for _, c := range rest {
		if member[c.pos] {
			scoring = append(scoring, c.Card)
		}
	}
	return scoring
}

func isFlushFive(sorted []indexedCard) ([]indexedCard, bool) {
	if len(sorted) != 5 {
		return nil, false
	}
	first := sorted[0]
	for _, c := range sorted[1:] {
		if c.Rank != first.Rank || !first.SuitMatches(c.Card) {
			return nil, false
		}
	}
	return sorted, true
}

func isFlushHouse(sorted []indexedCard) ([]indexedCard, bool) {
	if _, ok := isFullHouse(sorted); !ok {
		return nil, false
	}
	// The full house shape uses all five cards, so the flush side must too:
	// some suit has to count all five, wild cards included.
	for _, suit := range deck.Suits {
		if len(cardsOfSuit(sorted, suit)) == 5 {
			return sorted, true
		}
	}
	return nil, false
}

func isFiveOfAKind(sorted []indexedCard) ([]indexedCard, bool) {
	if len(sorted) != 5 {
		return nil, false
	}
	for _, c := range sorted[1:] {
		if c.Rank != sorted[0].Rank {
			return nil, false
		}
	}
	return sorted, true
}

func isStraightFlush(sorted []indexedCard, abilities AbilitySet) ([]indexedCard, bool) {
	flushCards, ok := isFlush(sorted, abilities)
	if !ok {
		return nil, false
	}
	// Re-check the flush subset for a straight. The subset is a slice of the
	// sorted copy, so it is still in descending rank order.
	return isStraight(flushCards, abilities)
}

func isFourOfAKind(sorted []indexedCard) ([]indexedCard, bool) {
	if len(sorted) < 4 {
		return nil, false
	}
	return rankGroup(sorted, 4)
}

func isFullHouse(sorted []indexedCard) ([]indexedCard, bool) {
	if len(sorted) != 5 {
		return nil, false
	}
	counts := make(map[deck.Rank]int)
	for _, c := range sorted {
		counts[c.Rank]++
	}
	if len(counts) != 2 {
		return nil, false
	}
	for _, n := range counts {
		if n != 2 && n != 3 {
			return nil, false
		}
	}
	return sorted, true
}

func isFlush(sorted []indexedCard, abilities AbilitySet) ([]indexedCard, bool) {
	if len(sorted) < 4 {
		return nil, false
	}
	for _, suit := range deck.Suits {
		suited := cardsOfSuit(sorted, suit)
		if abilities.Has(FourFingers) && len(suited) == 4 {
			return suited, true
		}
		if len(suited) == 5 {
			return suited, true
		}
	}
	return nil, false
}

// isStraight expects its input in descending rank order. Without FourFingers
// a straight is exactly five cards with four consecutive unit gaps. With
// FourFingers a four-card run qualifies: for a five-card hand the top-four
// window is tried before the bottom-four one, and a four-card hand is a
// single window.
func isStraight(sorted []indexedCard, abilities AbilitySet) ([]indexedCard, bool) {
	if len(sorted) < 4 {
		return nil, false
	}
	if abilities.Has(FourFingers) {
		switch len(sorted) {
		case 4:
			if unitGaps(sorted, 0, 3) {
				return sorted, true
			}
		case 5:
			if unitGaps(sorted, 0, 3) || unitGaps(sorted, 1, 4) {
				return sorted, true
			}
		}
		return nil, false
	}
	if len(sorted) == 5 && unitGaps(sorted, 0, 4) {
		return sorted, true
	}
	return nil, false
}

func isThreeOfAKind(sorted []indexedCard) ([]indexedCard, bool) {
	if len(sorted) < 3 {
		return nil, false
	}
	return rankGroup(sorted, 3)
}

func isTwoPair(sorted []indexedCard) ([]indexedCard, bool) {
	if len(sorted) < 4 {
		return nil, false
	}
	var pairs []indexedCard
	seen := make(map[deck.Rank]bool)
	for _, c := range sorted {
		if seen[c.Rank] {
			continue
		}
		seen[c.Rank] = true
		if group := sameRank(sorted, c.Rank); len(group) == 2 {
			pairs = append(pairs, group...)
		}
	}
	if len(pairs) == 4 {
		return pairs, true
	}
	return nil, false
}

func isPair(sorted []indexedCard) ([]indexedCard, bool) {
	if len(sorted) < 2 {
		return nil, false
	}
	return rankGroup(sorted, 2)
}

// highCard returns the single highest-rank card. The working copy is sorted
// descending with a stable sort, so on a rank tie the first played card wins.
// An all-stone hand has no cards here and matches with an empty set.
func highCard(sorted []indexedCard) []indexedCard {
	if len(sorted) == 0 {
		return nil
	}
	return sorted[:1]
}

// rankGroup finds the first rank (scanning from the highest) whose group has
// exactly n members
func rankGroup(sorted []indexedCard, n int) ([]indexedCard, bool) {
	seen := make(map[deck.Rank]bool)
	for _, c := range sorted {
		if seen[c.Rank] {
			continue
		}
		seen[c.Rank] = true
		if group := sameRank(sorted, c.Rank); len(group) == n {
			return group, true
		}
	}
	return nil, false
}

func sameRank(sorted []indexedCard, rank deck.Rank) []indexedCard {
	var group []indexedCard
	for _, c := range sorted {
		if c.Rank == rank {
			group = append(group, c)
		}
	}
	return group
}

func cardsOfSuit(sorted []indexedCard, suit deck.Suit) []indexedCard {
	var suited []indexedCard
	for _, c := range sorted {
		if c.IsSuit(suit) {
			suited = append(suited, c)
		}
	}
	return suited
}

func unitGaps(sorted []indexedCard, lo, hi int) bool {
	for i := lo; i < hi; i++ {
		if sorted[i].Rank-sorted[i+1].Rank != 1 {
			return false
		}
	}
	return true
}
