package game

import (
	"fmt"

	"github.com/cardroom/euchre/internal/deck"
)

// LeadSuit returns the effective suit of the current trick's first
// card. Only meaningful when at least one card has been played.
func (g *Game) LeadSuit() (deck.Suit, bool) {
	if len(g.CurrentTrick.Cards) == 0 {
		return 0, false
	}
	return deck.EffectiveSuit(g.CurrentTrick.Cards[0].Card, g.TrumpSuit), true
}

// CanPlay reports whether playerID may legally play card right now.
// Leading is unconstrained; otherwise the lead suit must be followed
// whenever the hand holds it.
func (g *Game) CanPlay(playerID string, card deck.Card) bool {
	player := g.players[playerID]
	if player == nil || !player.HasCard(card) {
		return false
	}

	lead, ok := g.LeadSuit()
	if !ok {
		return true
	}

	hasLead := false
	for _, held := range player.Hand {
		if deck.EffectiveSuit(held, g.TrumpSuit) == lead {
			hasLead = true
			break
		}
	}
	if hasLead {
		return deck.EffectiveSuit(card, g.TrumpSuit) == lead
	}
	return true
}

// LegalPlays returns the subset of the player's hand that CanPlay
// accepts, in hand order. The AI decides over exactly this set.
func (g *Game) LegalPlays(playerID string) []deck.Card {
	player := g.players[playerID]
	if player == nil {
		return nil
	}

	legal := make([]deck.Card, 0, len(player.Hand))
	for _, card := range player.Hand {
		if g.CanPlay(playerID, card) {
			legal = append(legal, card)
		}
	}
	return legal
}

// PlayCard plays one card into the current trick. The play is rejected
// whole when out of phase, out of turn, or illegal; otherwise the card
// leaves the hand, the trick advances, and a 4th card resolves the
// trick (and possibly the round and game).
func (g *Game) PlayCard(playerID string, card deck.Card) error {
	if g.Phase != Playing {
		return ErrWrongPhase
	}
	player := g.players[playerID]
	if player == nil {
		return ErrUnknownPlayer
	}
	if player.Position != g.CurrentSeat {
		return ErrNotYourTurn
	}
	if !player.HasCard(card) {
		return ErrCardNotHeld
	}
	if !g.CanPlay(playerID, card) {
		return ErrIllegalCard
	}

	player.removeCard(card)
	if len(g.CurrentTrick.Cards) == 0 {
		g.CurrentTrick.Leader = playerID
	}
	g.CurrentTrick.Cards = append(g.CurrentTrick.Cards, PlayedCard{PlayerID: playerID, Card: card})

	if len(g.CurrentTrick.Cards) == numSeats {
		g.completeTrick()
	} else {
		g.CurrentSeat = (g.CurrentSeat + 1) % numSeats
	}
	return nil
}

// completeTrick resolves a full trick: the highest RankValue under the
// trick's lead suit wins, leads the next trick, and the 5th trick
// closes the round.
func (g *Game) completeTrick() {
	if len(g.CurrentTrick.Cards) != numSeats {
		panic(fmt.Sprintf("trick resolved with %d cards", len(g.CurrentTrick.Cards)))
	}

	lead := deck.EffectiveSuit(g.CurrentTrick.Cards[0].Card, g.TrumpSuit)

	winner := 0
	best := deck.RankValue(g.CurrentTrick.Cards[0].Card, g.TrumpSuit, lead)
	for i, played := range g.CurrentTrick.Cards[1:] {
		if v := deck.RankValue(played.Card, g.TrumpSuit, lead); v > best {
			best = v
			winner = i + 1
		}
	}

	winnerID := g.CurrentTrick.Cards[winner].PlayerID
	g.CurrentTrick.Winner = winnerID
	g.CompletedTricks = append(g.CompletedTricks, g.CurrentTrick)
	g.CurrentTrick = Trick{}

	g.CurrentSeat = g.players[winnerID].Position

	if len(g.CompletedTricks) == tricksPerRound {
		g.completeRound()
	}
}

// completeRound scores the finished round and either ends the game or
// deals the next round.
//
// Maker team takes all five: 2 points, or 4 alone. Three or four: 1.
// Two or fewer: euchred, 2 points to the defenders.
func (g *Game) completeRound() {
	var teamTricks [2]int
	for _, trick := range g.CompletedTricks {
		teamTricks[g.players[trick.Winner].Position%2]++
	}

	makerTeam := g.players[g.TrumpMaker].Position % 2
	makerTricks := teamTricks[makerTeam]

	var scoringTeam, points int
	switch {
	case makerTricks == tricksPerRound && g.GoingAlone != "":
		scoringTeam, points = makerTeam, 4
	case makerTricks == tricksPerRound:
		scoringTeam, points = makerTeam, 2
	case makerTricks >= 3:
		scoringTeam, points = makerTeam, 1
	default:
		// Euchred: defenders score regardless of alone status.
		scoringTeam, points = 1-makerTeam, 2
	}

	g.TeamScores[scoringTeam] += points

	if g.TeamScores[scoringTeam] >= winningScore {
		g.Phase = GameComplete
		return
	}
	g.startNextRound()
}
