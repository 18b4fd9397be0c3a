package deck

// Trump-aware card comparison. The bower rules make ranking contextual:
// the Jack of the trump suit (right bower) is the highest card in play,
// and the Jack of the same-color suit (left bower) ranks second and
// counts as a member of the trump suit for every purpose.

// Rank values under a given trump and lead suit. Trick resolution and
// the AI both depend on these exact constants.
const (
	rightBowerValue = 100
	leftBowerValue  = 99
	trumpOffset     = 50
)

// IsRightBower returns true if the card is the Jack of the trump suit
func IsRightBower(c Card, trump Suit) bool {
	return c.Rank == Jack && c.Suit == trump
}

// IsLeftBower returns true if the card is the Jack of the suit sharing
// trump's color
func IsLeftBower(c Card, trump Suit) bool {
	return c.Rank == Jack && c.Suit != trump && c.Suit.SameColor(trump)
}

// IsTrump returns true if the card belongs to the trump suit, counting
// the left bower as trump
func IsTrump(c Card, trump Suit) bool {
	return c.Suit == trump || IsLeftBower(c, trump)
}

// EffectiveSuit returns the suit a card plays as: trump for the left
// bower, the printed suit otherwise. Follow-suit legality and trick
// comparison use this, never the printed suit directly.
func EffectiveSuit(c Card, trump Suit) Suit {
	if IsLeftBower(c, trump) {
		return trump
	}
	return c.Suit
}

// RankValue returns the comparison value of a card within a trick:
// right bower 100, left bower 99, other trump 50+rank, lead-suit cards
// their plain rank (9..14), everything else 0. Values are unique per
// card under a fixed trump and lead, so strict greater-than resolves
// every trick without ties.
func RankValue(c Card, trump, lead Suit) int {
	switch {
	case IsRightBower(c, trump):
		return rightBowerValue
	case IsLeftBower(c, trump):
		return leftBowerValue
	case c.Suit == trump:
		return trumpOffset + int(c.Rank)
	case c.Suit == lead:
		return int(c.Rank)
	default:
		return 0
	}
}
