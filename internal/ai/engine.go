package ai

import (
	rand "math/rand/v2"

	"github.com/cardroom/euchre/internal/deck"
)

// Engine makes decisions for one AI seat. It is stateless between
// calls: every decision is a pure function of its inputs, the
// personality, and the injected randomness.
type Engine struct {
	personality Personality
	rng         *rand.Rand
}

// New creates an engine with the given personality. rng feeds the two
// probabilistic branches (lead preference and go-alone); everything
// else is deterministic.
func New(personality Personality, rng *rand.Rand) *Engine {
	return &Engine{personality: personality, rng: rng}
}

// Personality returns the engine's personality.
func (e *Engine) Personality() Personality {
	return e.personality
}

// Name returns the personality's display name.
func (e *Engine) Name() string {
	return e.personality.Name
}

// HandStrength scores a hand from 0 to 1 against a candidate trump
// suit: bowers and the trump ace dominate, off-suit aces and trump
// length add the rest.
func (e *Engine) HandStrength(hand []deck.Card, trump deck.Suit) float64 {
	var strength float64
	trumpCount := 0
	offAces := 0

	for _, c := range hand {
		switch {
		case deck.IsRightBower(c, trump):
			trumpCount++
			strength += 0.25
		case deck.IsLeftBower(c, trump):
			trumpCount++
			strength += 0.20
		case c.Suit == trump && c.IsAce():
			trumpCount++
			strength += 0.15
		case c.Suit == trump:
			trumpCount++
			strength += 0.08
		case c.IsAce():
			offAces++
			strength += 0.05
		}
	}

	if trumpCount >= 3 {
		strength += 0.15
	} else if trumpCount >= 2 {
		strength += 0.08
	}

	strength += float64(offAces) * 0.03

	return min(strength, 1.0)
}

// DecideBid decides a trump-selection action. Round 1 weighs the
// turned card's suit against a threshold loosened by aggression (and
// further for the dealer, who profits from the pickup). Round 2 picks
// the strongest suit other than the turned-down one.
func (e *Engine) DecideBid(hand []deck.Card, trumpCard deck.Card, isDealer bool, round int) (bool, deck.Suit) {
	if round == 1 {
		strength := e.HandStrength(hand, trumpCard.Suit)
		threshold := 0.4 - e.personality.Aggression*0.2
		if isDealer {
			threshold -= 0.1
		}
		if strength >= threshold {
			return true, trumpCard.Suit
		}
		return false, 0
	}

	var bestSuit deck.Suit
	bestStrength := 0.0
	for _, suit := range deck.Suits() {
		if suit == trumpCard.Suit {
			continue
		}
		if s := e.HandStrength(hand, suit); s > bestStrength {
			bestStrength = s
			bestSuit = suit
		}
	}

	if bestStrength >= 0.5-e.personality.Aggression*0.25 {
		return true, bestSuit
	}
	return false, 0
}

// DecideGoAlone decides whether to play without the partner. Cautious
// personalities never do. Both bowers plus a third trump is an
// automatic yes; otherwise a near-perfect hand goes alone with
// probability equal to aggression.
func (e *Engine) DecideGoAlone(hand []deck.Card, trump deck.Suit) bool {
	if e.personality.RiskTolerance < 0.3 {
		return false
	}

	hasRight, hasLeft := false, false
	trumpCount := 0
	for _, c := range hand {
		if deck.IsRightBower(c, trump) {
			hasRight = true
		}
		if deck.IsLeftBower(c, trump) {
			hasLeft = true
		}
		if deck.IsTrump(c, trump) {
			trumpCount++
		}
	}
	if hasRight && hasLeft && trumpCount >= 3 {
		return true
	}

	threshold := 0.8 - e.personality.RiskTolerance*0.2
	return e.HandStrength(hand, trump) >= threshold && e.rng.Float64() < e.personality.Aggression
}

// ChooseLead picks the card to open a trick with. Aggressive hands
// lead their best trump; otherwise an off-suit ace, then the highest
// off-suit card, falling back to whatever is left when the hand is
// all trump.
func (e *Engine) ChooseLead(legal []deck.Card, trump deck.Suit) deck.Card {
	var trumps, offSuit []deck.Card
	for _, c := range legal {
		if deck.IsTrump(c, trump) {
			trumps = append(trumps, c)
		} else {
			offSuit = append(offSuit, c)
		}
	}

	if len(trumps) > 0 && e.rng.Float64() < e.personality.Aggression {
		best := trumps[0]
		for _, c := range trumps[1:] {
			if deck.RankValue(c, trump, trump) > deck.RankValue(best, trump, trump) {
				best = c
			}
		}
		return best
	}

	if len(offSuit) > 0 {
		for _, c := range offSuit {
			if c.IsAce() {
				return c
			}
		}
		best := offSuit[0]
		for _, c := range offSuit[1:] {
			if c.Rank > best.Rank {
				best = c
			}
		}
		return best
	}

	return legal[0]
}

// ChooseFollow picks a card when not leading. If any legal card beats
// the card currently winning the trick, play the cheapest such winner;
// otherwise sluff the lowest legal card. Ties cannot arise: RankValue
// is unique per card under a fixed trump and lead, and equal-value
// comparisons keep the first card in hand order.
func (e *Engine) ChooseFollow(legal []deck.Card, trick []deck.Card, trump deck.Suit) deck.Card {
	lead := deck.EffectiveSuit(trick[0], trump)

	winning := trick[0]
	for _, c := range trick[1:] {
		if deck.RankValue(c, trump, lead) > deck.RankValue(winning, trump, lead) {
			winning = c
		}
	}
	winningValue := deck.RankValue(winning, trump, lead)

	var cheapestWinner deck.Card
	haveWinner := false
	for _, c := range legal {
		v := deck.RankValue(c, trump, lead)
		if v <= winningValue {
			continue
		}
		if !haveWinner || v < deck.RankValue(cheapestWinner, trump, lead) {
			cheapestWinner = c
			haveWinner = true
		}
	}
	if haveWinner {
		return cheapestWinner
	}

	lowest := legal[0]
	for _, c := range legal[1:] {
		if deck.RankValue(c, trump, lead) < deck.RankValue(lowest, trump, lead) {
			lowest = c
		}
	}
	return lowest
}

// ChooseDiscard picks the dealer's discard after the pickup: the
// lowest off-suit card, or the lowest trump when the hand is nothing
// but trump.
func (e *Engine) ChooseDiscard(hand []deck.Card, trump deck.Suit) deck.Card {
	var offSuit []deck.Card
	for _, c := range hand {
		if !deck.IsTrump(c, trump) {
			offSuit = append(offSuit, c)
		}
	}

	if len(offSuit) > 0 {
		lowest := offSuit[0]
		for _, c := range offSuit[1:] {
			if c.Rank < lowest.Rank {
				lowest = c
			}
		}
		return lowest
	}

	lowest := hand[0]
	for _, c := range hand[1:] {
		if deck.RankValue(c, trump, trump) < deck.RankValue(lowest, trump, trump) {
			lowest = c
		}
	}
	return lowest
}
