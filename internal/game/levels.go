package game

// LevelTracker owns the current base score pair and level for every hand
// type over the life of a game run. Level cards played during the run bump
// one hand type's base pair by a fixed increment; every scoring pass reads
// the current values. There is one tracker per run and it is not safe for
// concurrent use; hosts that score from multiple goroutines must serialise
// access themselves.
type LevelTracker struct {
	scores map[HandType]BaseScore
	levels map[HandType]int
}

// NewLevelTracker returns a tracker with every hand type at level 1 and its
// default base values.
func NewLevelTracker() *LevelTracker {
	t := &LevelTracker{
		scores: make(map[HandType]BaseScore, len(HandTypes)),
		levels: make(map[HandType]int, len(HandTypes)),
	}
	for _, ht := range HandTypes {
		t.scores[ht] = baseScores[ht]
		t.levels[ht] = 1
	}
	return t
}

// ApplyLevelCard applies one level-up to the target hand type: its base pair
// grows by the fixed per-type increment and its level goes up by one.
func (t *LevelTracker) ApplyLevelCard(target HandType) {
	mustValid(target)
	boost := levelBoosts[target]
	score := t.scores[target]
	score.Chips += boost.Chips
	score.Mult += boost.Mult
	t.scores[target] = score
	t.levels[target]++
}

// BaseScore returns the current base (chips, mult) pair for a hand type
func (t *LevelTracker) BaseScore(ht HandType) BaseScore {
	mustValid(ht)
	return t.scores[ht]
}

// Level returns the current level for a hand type. Levels start at 1.
func (t *LevelTracker) Level(ht HandType) int {
	mustValid(ht)
	return t.levels[ht]
}
