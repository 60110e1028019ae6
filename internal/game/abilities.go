package game

import "fmt"

// Ability identifies an out-of-band modifier (a joker in the source game)
// active during a scoring attempt. Only FourFingers changes behaviour in this
// core: it relaxes flushes and straights to four cards. Every other ID is
// carried as an opaque extension point so a host can match on them.
type Ability int

const (
	Joker Ability = iota
	GreedyJoker
	LustyJoker
	WrathfulJoker
	GluttonousJoker
	JollyJoker
	ZanyJoker
	MadJoker
	CrazyJoker
	DrollJoker
	SlyJoker
	WilyJoker
	CleverJoker
	DeviousJoker
	CraftyJoker
	HalfJoker
	JokerStencil
	FourFingers
)

var abilityNames = map[Ability]string{
	Joker:           "joker",
	GreedyJoker:     "greedy_joker",
	LustyJoker:      "lusty_joker",
	WrathfulJoker:   "wrathful_joker",
	GluttonousJoker: "gluttonous_joker",
	JollyJoker:      "jolly_joker",
	ZanyJoker:       "zany_joker",
	MadJoker:        "mad_joker",
	CrazyJoker:      "crazy_joker",
	DrollJoker:      "droll_joker",
	SlyJoker:        "sly_joker",
	WilyJoker:       "wily_joker",
	CleverJoker:     "clever_joker",
	DeviousJoker:    "devious_joker",
	CraftyJoker:     "crafty_joker",
	HalfJoker:       "half_joker",
	JokerStencil:    "joker_stencil",
	FourFingers:     "four_fingers",
}

// String returns the ability's wire name
func (a Ability) String() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAbility parses a wire name back into an Ability
func ParseAbility(s string) (Ability, error) {
	for a, name := range abilityNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown ability: %q", s)
}

// AbilitySet is the unordered collection of active abilities for one scoring
// attempt
type AbilitySet map[Ability]bool

// NewAbilitySet builds a set from the given abilities
func NewAbilitySet(abilities ...Ability) AbilitySet {
	set := make(AbilitySet, len(abilities))
	for _, a := range abilities {
		set[a] = true
	}
	return set
}

// Has reports whether the ability is active. A nil set has no abilities.
func (s AbilitySet) Has(a Ability) bool {
	return s[a]
}
