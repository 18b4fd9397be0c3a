package game

import "github.com/cardroom/euchre/internal/deck"

// PlayerView is the player-scoped projection of the game: the viewer's
// own hand in full, everyone else reduced to counts and public state.
// This is the only game shape that ever leaves the core.
type PlayerView struct {
	RoomCode       string          `json:"roomCode"`
	Phase          string          `json:"phase"`
	PlayerID       string          `json:"playerId"`
	PlayerPosition int             `json:"playerPosition"`
	Players        []SeatView      `json:"players"`
	Hand           []deck.Card     `json:"hand"`
	TrumpSuit      *deck.Suit      `json:"trumpSuit,omitempty"`
	TrumpCard      *deck.Card      `json:"trumpCard,omitempty"`
	CurrentTrick   TrickView       `json:"currentTrick"`
	TricksComplete int             `json:"completedTricksCount"`
	TeamScores     [2]int          `json:"teamScores"`
	DealerSeat     int             `json:"dealerSeat"`
	CurrentSeat    int             `json:"currentSeat"`
	BidRound       int             `json:"trumpSelectionRound"`
	BidSeat        int             `json:"trumpSelectionSeat"`
	TrumpMaker     string          `json:"trumpMaker,omitempty"`
	GoingAlone     string          `json:"goingAlone,omitempty"`
}

// SeatView is the public face of one seat
type SeatView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
	HandSize  int    `json:"handSize"`
	Connected bool   `json:"connected"`
	IsAI      bool   `json:"isAi"`
}

// TrickView is the public state of the trick in progress
type TrickView struct {
	Cards  []PlayedCard `json:"cards"`
	Leader string       `json:"leader,omitempty"`
}

// View builds the projection for one player. Returns ok=false for an
// ID not seated in this game.
func (g *Game) View(playerID string) (PlayerView, bool) {
	viewer := g.players[playerID]
	if viewer == nil {
		return PlayerView{}, false
	}

	seats := make([]SeatView, 0, len(g.seatOrder))
	for _, id := range g.seatOrder {
		p := g.players[id]
		seats = append(seats, SeatView{
			ID:        p.ID,
			Name:      p.Name,
			Position:  p.Position,
			HandSize:  len(p.Hand),
			Connected: p.Connected,
			IsAI:      p.IsAI,
		})
	}

	hand := make([]deck.Card, len(viewer.Hand))
	copy(hand, viewer.Hand)

	trick := TrickView{
		Cards:  append([]PlayedCard(nil), g.CurrentTrick.Cards...),
		Leader: g.CurrentTrick.Leader,
	}

	view := PlayerView{
		RoomCode:       g.RoomCode,
		Phase:          g.Phase.String(),
		PlayerID:       playerID,
		PlayerPosition: viewer.Position,
		Players:        seats,
		Hand:           hand,
		CurrentTrick:   trick,
		TricksComplete: len(g.CompletedTricks),
		TeamScores:     g.TeamScores,
		DealerSeat:     g.DealerSeat,
		CurrentSeat:    g.CurrentSeat,
		BidRound:       g.TrumpSelectionRound,
		BidSeat:        g.TrumpSelectionSeat,
		TrumpMaker:     g.TrumpMaker,
		GoingAlone:     g.GoingAlone,
	}
	if g.TrumpSet {
		suit := g.TrumpSuit
		view.TrumpSuit = &suit
	}
	if g.HasTrumpCard {
		card := g.TrumpCard
		view.TrumpCard = &card
	}
	return view, true
}
