package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionScore(t *testing.T) {
	session := NewSession()

	result, err := session.Score(ScoreData{
		Cards: []string{"2s", "2h", "2d", "2c", "2h"},
		Seed:  "TESTRUN",
	})
	require.NoError(t, err)

	assert.Equal(t, "Five of a Kind", result.HandType)
	assert.Equal(t, 130, result.Chips)
	assert.Equal(t, 12.0, result.Mult)
	assert.Equal(t, 1560.0, result.Score)
	assert.Len(t, result.ScoringCards, 5)
}

func TestSessionScorePreservesPlayOrder(t *testing.T) {
	session := NewSession()

	result, err := session.Score(ScoreData{
		Cards: []string{"Kh:foil", "6c", "3d", "Ks:foil", "Kh:foil"},
		Seed:  "TESTRUN",
	})
	require.NoError(t, err)

	assert.Equal(t, "Three of a Kind", result.HandType)
	assert.Equal(t, []string{"K♥:foil", "K♠:foil", "K♥:foil"}, result.ScoringCards)
	assert.Equal(t, 210, result.Chips)
}

func TestSessionScoreWithAbilities(t *testing.T) {
	session := NewSession()

	result, err := session.Score(ScoreData{
		Cards:     []string{"Ah", "Th", "9h", "4h", "7s"},
		Abilities: []string{"four_fingers"},
		Seed:      "TESTRUN",
	})
	require.NoError(t, err)

	assert.Equal(t, "Flush", result.HandType)
	assert.Len(t, result.ScoringCards, 4)
}

func TestSessionScoreWithHeldSteel(t *testing.T) {
	session := NewSession()

	result, err := session.Score(ScoreData{
		Cards: []string{"Ah"},
		Held:  []string{"Kh:steel"},
		Seed:  "TESTRUN",
	})
	require.NoError(t, err)

	assert.Equal(t, "High Card", result.HandType)
	assert.Equal(t, 1.5, result.Mult)
}

func TestSessionScoreErrors(t *testing.T) {
	session := NewSession()

	tests := []struct {
		name string
		req  ScoreData
	}{
		{"no cards", ScoreData{}},
		{"bad card", ScoreData{Cards: []string{"Zz"}}},
		{"bad held card", ScoreData{Cards: []string{"Ah"}, Held: []string{"nope"}}},
		{"bad ability", ScoreData{Cards: []string{"Ah"}, Abilities: []string{"five_fingers"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := session.Score(tt.req)
			assert.Error(t, err)
		})
	}
}

func TestSessionLevel(t *testing.T) {
	session := NewSession()

	result, err := session.Level(LevelData{HandType: "Pair"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Level)
	assert.Equal(t, 25, result.Chips)
	assert.Equal(t, 3.0, result.Mult)

	// Leveling sticks for later scores in the same session.
	score, err := session.Score(ScoreData{Cards: []string{"Ah", "Ad"}, Seed: "TESTRUN"})
	require.NoError(t, err)
	assert.Equal(t, 25+22, score.Chips)
	assert.Equal(t, 3.0, score.Mult)
}

func TestSessionLevelUnknownHandType(t *testing.T) {
	session := NewSession()

	_, err := session.Level(LevelData{HandType: "Grand Slam"})
	assert.Error(t, err)
}

func TestSessionsAreIndependent(t *testing.T) {
	a := NewSession()
	b := NewSession()

	_, err := a.Level(LevelData{HandType: "Pair"})
	require.NoError(t, err)

	result, err := b.Score(ScoreData{Cards: []string{"Ah", "Ad"}, Seed: "TESTRUN"})
	require.NoError(t, err)
	assert.Equal(t, 10+22, result.Chips)
}

func TestSessionScoreReportsLuckyRolls(t *testing.T) {
	session := NewSession()

	result, err := session.Score(ScoreData{
		Cards: []string{"7h:lucky", "7s:lucky"},
		Seed:  "TESTRUN",
	})
	require.NoError(t, err)

	require.Len(t, result.LuckyRolls, 2)
	for i, roll := range result.LuckyRolls {
		assert.Equal(t, i, roll.Index)
		assert.GreaterOrEqual(t, roll.Roll, 0.0)
		assert.Less(t, roll.Roll, 1.0)
		assert.Equal(t, roll.Roll < 0.2, roll.Hit)
	}

	// No lucky cards, no rolls reported.
	plain, err := session.Score(ScoreData{Cards: []string{"Ah"}, Seed: "TESTRUN"})
	require.NoError(t, err)
	assert.Empty(t, plain.LuckyRolls)
}
