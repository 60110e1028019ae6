package deck

// Edition is a card's print edition. A card has at most one edition; applying
// a new one replaces the old. Negative exists only on jokers, never on a
// playing card.
type Edition int

const (
	EditionNone Edition = iota
	Foil
	Holographic
	Polychrome
	Negative
)

// String returns the string representation of an edition
func (e Edition) String() string {
	switch e {
	case EditionNone:
		return "none"
	case Foil:
		return "foil"
	case Holographic:
		return "holo"
	case Polychrome:
		return "polychrome"
	case Negative:
		return "negative"
	default:
		return "?"
	}
}

// Enhancement is a card's gameplay enhancement. Mutually exclusive: a card
// carries at most one.
type Enhancement int

const (
	EnhancementNone Enhancement = iota
	Bonus
	Mult
	Wild
	Glass
	Steel
	Stone
	Gold
	Lucky
)

// String returns the string representation of an enhancement
func (e Enhancement) String() string {
	switch e {
	case EnhancementNone:
		return "none"
	case Bonus:
		return "bonus"
	case Mult:
		return "mult"
	case Wild:
		return "wild"
	case Glass:
		return "glass"
	case Steel:
		return "steel"
	case Stone:
		return "stone"
	case Gold:
		return "gold"
	case Lucky:
		return "lucky"
	default:
		return "?"
	}
}

// Seal is a wax seal layered on a card, independent of edition and
// enhancement. A Red seal makes the card's scoring effects apply twice.
type Seal int

const (
	SealNone Seal = iota
	GoldSeal
	RedSeal
	BlueSeal
	PurpleSeal
)

// String returns the string representation of a seal
func (s Seal) String() string {
	switch s {
	case SealNone:
		return "none"
	case GoldSeal:
		return "gold-seal"
	case RedSeal:
		return "red-seal"
	case BlueSeal:
		return "blue-seal"
	case PurpleSeal:
		return "purple-seal"
	default:
		return "?"
	}
}
