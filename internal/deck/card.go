package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in a fixed order. Shape detection iterates this
// order, so it must stay stable.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are always high in this game; there is no
// ace-low straight.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Chips returns the base chip value a card of this rank contributes when it
// scores: face value for 2-10, 10 for J/Q/K, 11 for an Ace.
func (r Rank) Chips() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r)
	case r >= Jack && r <= King:
		return 10
	case r == Ace:
		return 11
	default:
		panic(fmt.Sprintf("deck: invalid rank %d", int(r)))
	}
}

// Card represents a playing card with its modifiers. The deck in this game is
// mutable, so duplicate-looking cards are legal; ID distinguishes two physical
// copies of the same card. ID is never used for scoring logic, only for
// re-matching a card to its original play-order slot.
type Card struct {
	Rank        Rank
	Suit        Suit
	Edition     Edition
	Enhancement Enhancement
	Seal        Seal
	ID          int
}

// NewCard creates a plain card with no modifiers
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "A♠", "K♥:foil")
func (c Card) String() string {
	s := fmt.Sprintf("%s%s", c.Rank, c.Suit)
	if c.Edition != EditionNone {
		s += ":" + c.Edition.String()
	}
	if c.Enhancement != EnhancementNone {
		s += ":" + c.Enhancement.String()
	}
	if c.Seal != SealNone {
		s += ":" + c.Seal.String()
	}
	return s
}

// Chips returns the card's base chip contribution when scored
func (c Card) Chips() int {
	return c.Rank.Chips()
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}

// IsSuit reports whether the card counts as the given suit. A Wild card
// counts as every suit at once.
func (c Card) IsSuit(s Suit) bool {
	return c.Suit == s || c.Enhancement == Wild
}

// SuitMatches reports whether two cards share a suit, treating a Wild card on
// either side as matching anything.
func (c Card) SuitMatches(other Card) bool {
	if c.Suit == other.Suit {
		return true
	}
	return c.Enhancement == Wild || other.Enhancement == Wild
}
