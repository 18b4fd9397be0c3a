package game

import "github.com/cardroom/euchre/internal/deck"

// BidAction is one of the three trump-selection moves
type BidAction int

const (
	Pass BidAction = iota
	OrderUp
	NameTrump
)

// String returns the wire name of a bid action
func (a BidAction) String() string {
	switch a {
	case Pass:
		return "pass"
	case OrderUp:
		return "order_up"
	case NameTrump:
		return "name_trump"
	default:
		return "unknown"
	}
}

// Bidder returns the player whose bid is awaited, or nil outside
// trump selection
func (g *Game) Bidder() *Player {
	if g.Phase != TrumpSelection {
		return nil
	}
	return g.PlayerAtSeat(g.TrumpSelectionSeat)
}

// HandleBid applies one trump-selection action for playerID. suit is
// only consulted for NameTrump. Rejections leave the game untouched.
//
// Round 1 walks the seats left of the dealer offering the turned card;
// OrderUp fixes its suit as trump and hands the card to the dealer,
// who must discard before play. A full circle of passes opens round 2,
// where any suit except the turned-down one may be named. A second
// full circle voids the deal and redeals.
func (g *Game) HandleBid(playerID string, action BidAction, suit deck.Suit) error {
	if g.Phase != TrumpSelection {
		return ErrWrongPhase
	}
	player := g.players[playerID]
	if player == nil {
		return ErrUnknownPlayer
	}
	if player.Position != g.TrumpSelectionSeat {
		return ErrNotYourTurn
	}

	switch action {
	case OrderUp:
		if g.TrumpSelectionRound != 1 {
			return ErrWrongPhase
		}
		g.TrumpSuit = g.TrumpCard.Suit
		g.TrumpSet = true
		g.TrumpMaker = playerID

		// Dealer picks up the turned card and owes a discard before
		// play can start.
		dealer := g.Dealer()
		dealer.Hand = append(dealer.Hand, g.TrumpCard)
		g.Phase = DealerDiscard
		return nil

	case NameTrump:
		if g.TrumpSelectionRound != 2 {
			return ErrWrongPhase
		}
		if suit == g.TrumpCard.Suit {
			return ErrInvalidSuit
		}
		g.TrumpSuit = suit
		g.TrumpSet = true
		g.TrumpMaker = playerID
		g.startPlaying()
		return nil

	case Pass:
		g.TrumpSelectionSeat = (g.TrumpSelectionSeat + 1) % numSeats
		firstBidder := (g.DealerSeat + 1) % numSeats
		if g.TrumpSelectionSeat == firstBidder {
			if g.TrumpSelectionRound == 1 {
				g.TrumpSelectionRound = 2
			} else {
				// Everyone passed twice: the deal is void. Same dealer,
				// fresh fully-shuffled deck.
				g.clearRoundState()
				g.dealCards()
			}
		}
		return nil

	default:
		return ErrWrongPhase
	}
}

// HandleDiscard resolves the dealer's obligation after picking up the
// turned card. Only the dealer, only during DealerDiscard, and only a
// card actually held.
func (g *Game) HandleDiscard(playerID string, card deck.Card) error {
	if g.Phase != DealerDiscard {
		return ErrWrongPhase
	}
	dealer := g.Dealer()
	if dealer == nil || dealer.ID != playerID {
		return ErrNotYourTurn
	}
	if !dealer.removeCard(card) {
		return ErrCardNotHeld
	}

	g.startPlaying()
	return nil
}

// HandleGoAlone records the trump maker's decision to play without
// their partner. Only the maker may set it, and only before the first
// card of the round is played.
func (g *Game) HandleGoAlone(playerID string, alone bool) error {
	if playerID != g.TrumpMaker || g.TrumpMaker == "" {
		return ErrNotTrumpMaker
	}
	if len(g.CompletedTricks) > 0 || len(g.CurrentTrick.Cards) > 0 {
		return ErrWrongPhase
	}

	if alone {
		g.GoingAlone = playerID
	} else {
		g.GoingAlone = ""
	}
	return nil
}

func (g *Game) startPlaying() {
	g.Phase = Playing
	g.CurrentSeat = (g.DealerSeat + 1) % numSeats
}
