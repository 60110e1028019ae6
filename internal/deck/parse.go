package deck

import (
	"fmt"
	"strings"
)

// ParseCard parses card notation into a Card.
// Format: [Rank][Suit] followed by optional colon-separated modifiers,
// e.g. "As", "Kh:foil", "Th:stone:red-seal".
// Ranks: A, K, Q, J, T, 9, 8, 7, 6, 5, 4, 3, 2
// Suits: s (spades), h (hearts), d (diamonds), c (clubs)
// Modifiers: editions (foil, holo, polychrome), enhancements (bonus, mult,
// wild, glass, steel, stone, gold, lucky), seals (gold-seal, red-seal,
// blue-seal, purple-seal). At most one of each kind.
func ParseCard(s string) (Card, error) {
	parts := strings.Split(s, ":")
	base := parts[0]
	if len(base) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	rank, err := parseRank(base[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(base[1])
	if err != nil {
		return Card{}, err
	}

	card := Card{Rank: rank, Suit: suit}
	for _, mod := range parts[1:] {
		if err := applyModifier(&card, mod); err != nil {
			return Card{}, fmt.Errorf("card %q: %w", s, err)
		}
	}
	return card, nil
}

// ParseCards parses a space-separated list of card notations. Each card gets
// an ID reflecting its position, so duplicate notations still produce
// distinguishable cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for i, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		card.ID = i
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank: %c", c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit: %c", c)
	}
}

func applyModifier(card *Card, mod string) error {
	switch strings.ToLower(mod) {
	case "foil":
		return setEdition(card, Foil)
	case "holo", "holographic":
		return setEdition(card, Holographic)
	case "polychrome":
		return setEdition(card, Polychrome)
	case "bonus":
		return setEnhancement(card, Bonus)
	case "mult":
		return setEnhancement(card, Mult)
	case "wild":
		return setEnhancement(card, Wild)
	case "glass":
		return setEnhancement(card, Glass)
	case "steel":
		return setEnhancement(card, Steel)
	case "stone":
		return setEnhancement(card, Stone)
	case "gold":
		return setEnhancement(card, Gold)
	case "lucky":
		return setEnhancement(card, Lucky)
	case "gold-seal":
		return setSeal(card, GoldSeal)
	case "red-seal", "red":
		return setSeal(card, RedSeal)
	case "blue-seal", "blue":
		return setSeal(card, BlueSeal)
	case "purple-seal", "purple":
		return setSeal(card, PurpleSeal)
	default:
		return fmt.Errorf("unknown modifier: %q", mod)
	}
}

func setEdition(card *Card, e Edition) error {
	if card.Edition != EditionNone {
		return fmt.Errorf("duplicate edition: already %s", card.Edition)
	}
	card.Edition = e
	return nil
}

func setEnhancement(card *Card, e Enhancement) error {
	if card.Enhancement != EnhancementNone {
		return fmt.Errorf("duplicate enhancement: already %s", card.Enhancement)
	}
	card.Enhancement = e
	return nil
}

func setSeal(card *Card, s Seal) error {
	if card.Seal != SealNone {
		return fmt.Errorf("duplicate seal: already %s", card.Seal)
	}
	card.Seal = s
	return nil
}
