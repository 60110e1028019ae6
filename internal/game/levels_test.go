package game

import "testing"

func TestNewLevelTrackerDefaults(t *testing.T) {
	tracker := NewLevelTracker()

	for _, ht := range HandTypes {
		if got := tracker.Level(ht); got != 1 {
			t.Errorf("%s: expected level 1, got %d", ht, got)
		}
		if got := tracker.BaseScore(ht); got != baseScores[ht] {
			t.Errorf("%s: expected base %+v, got %+v", ht, baseScores[ht], got)
		}
	}
}

func TestApplyLevelCard(t *testing.T) {
	tracker := NewLevelTracker()

	tracker.ApplyLevelCard(Flush)

	if got := tracker.Level(Flush); got != 2 {
		t.Errorf("expected level 2, got %d", got)
	}
	// Flush levels add +15 chips, +2 mult on a 35/4 base.
	if got := tracker.BaseScore(Flush); got.Chips != 50 || got.Mult != 6 {
		t.Errorf("expected 50 chips mult 6, got %+v", got)
	}

	// Other hand types are untouched.
	if got := tracker.BaseScore(Straight); got != baseScores[Straight] {
		t.Errorf("Straight base changed: %+v", got)
	}
	if got := tracker.Level(Straight); got != 1 {
		t.Errorf("Straight level changed: %d", got)
	}
}

func TestApplyLevelCardAccumulates(t *testing.T) {
	// After N level cards the level is 1+N and the base pair is the baseline
	// plus N increments, for every hand type.
	const n = 7

	for _, ht := range HandTypes {
		tracker := NewLevelTracker()
		for i := 0; i < n; i++ {
			tracker.ApplyLevelCard(ht)
		}

		if got := tracker.Level(ht); got != 1+n {
			t.Errorf("%s: expected level %d, got %d", ht, 1+n, got)
		}

		want := baseScores[ht]
		want.Chips += n * levelBoosts[ht].Chips
		want.Mult += n * levelBoosts[ht].Mult
		if got := tracker.BaseScore(ht); got != want {
			t.Errorf("%s: expected %+v, got %+v", ht, want, got)
		}
	}
}

func TestTrackerInvalidHandTypePanics(t *testing.T) {
	tracker := NewLevelTracker()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid hand type")
		}
	}()
	tracker.ApplyLevelCard(HandType(99))
}
