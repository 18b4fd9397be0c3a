package game

import (
	rand "math/rand/v2"

	"github.com/cardroom/euchre/internal/deck"
)

// Phase represents the game phase
type Phase int

const (
	WaitingForPlayers Phase = iota
	Dealing
	TrumpSelection
	DealerDiscard
	Playing
	GameComplete
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case WaitingForPlayers:
		return "waiting_for_players"
	case Dealing:
		return "dealing"
	case TrumpSelection:
		return "trump_selection"
	case DealerDiscard:
		return "dealer_discard"
	case Playing:
		return "playing"
	case GameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Player represents a seat occupant. Hands are owned by the Game and
// mutated only through deal, discard and play.
type Player struct {
	ID        string
	Name      string
	Hand      []deck.Card
	Position  int // seat 0..3, fixed at join; partnership = position mod 2
	Connected bool
	IsAI      bool
}

// HasCard returns true if the card is currently in the player's hand
func (p *Player) HasCard(c deck.Card) bool {
	for _, held := range p.Hand {
		if held == c {
			return true
		}
	}
	return false
}

// removeCard takes a card out of the player's hand, preserving order
func (p *Player) removeCard(c deck.Card) bool {
	for i, held := range p.Hand {
		if held == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// Trick is one trick in progress or archived. Cards is append-only and
// holds exactly 4 entries once complete.
type Trick struct {
	Cards  []PlayedCard
	Leader string
	Winner string
}

// PlayedCard pairs a card with the player who played it
type PlayedCard struct {
	PlayerID string
	Card     deck.Card
}

const (
	numSeats       = 4
	handSize       = 5
	tricksPerRound = 5
	winningScore   = 10
)

// Game is the aggregate root for a single Euchre match. It is not safe
// for concurrent use; callers serialize access (see server.Room).
type Game struct {
	RoomCode string

	Phase     Phase
	players   map[string]*Player
	seatOrder []string // player IDs in seat order, stable after join

	deck         *deck.Deck
	TrumpSuit    deck.Suit
	TrumpSet     bool
	TrumpCard    deck.Card // the turned kitty card
	HasTrumpCard bool

	DealerSeat  int
	CurrentSeat int // seat expected to play during Playing

	CurrentTrick    Trick
	CompletedTricks []Trick

	TrumpMaker string // player ID, "" until negotiation resolves
	GoingAlone string // player ID of the lone maker, "" if not alone

	TeamScores [2]int

	TrumpSelectionRound int // 1 or 2
	TrumpSelectionSeat  int

	rng *rand.Rand
}

// New creates a game for a room. rng drives every shuffle for the
// lifetime of the game.
func New(roomCode string, rng *rand.Rand) *Game {
	return &Game{
		RoomCode: roomCode,
		Phase:    WaitingForPlayers,
		players:  make(map[string]*Player),
		rng:      rng,
	}
}

// AddPlayer seats a player. Returns false if the table is full or the
// ID is already seated. The game starts the moment the 4th seat fills.
func (g *Game) AddPlayer(id, name string, isAI bool) bool {
	if len(g.players) >= numSeats {
		return false
	}
	if _, seated := g.players[id]; seated {
		return false
	}

	g.players[id] = &Player{
		ID:        id,
		Name:      name,
		Position:  len(g.players),
		Connected: true,
		IsAI:      isAI,
	}
	g.seatOrder = append(g.seatOrder, id)

	if len(g.players) == numSeats {
		g.start()
	}
	return true
}

// RemovePlayer unseats a player. Only possible while the room is still
// waiting for players; once the game starts, seats are fixed and a
// departing human is only marked disconnected.
func (g *Game) RemovePlayer(id string) bool {
	if g.Phase != WaitingForPlayers {
		return false
	}
	if _, seated := g.players[id]; !seated {
		return false
	}

	delete(g.players, id)
	for i, seatID := range g.seatOrder {
		if seatID == id {
			g.seatOrder = append(g.seatOrder[:i], g.seatOrder[i+1:]...)
			break
		}
	}
	for i, seatID := range g.seatOrder {
		g.players[seatID].Position = i
	}
	return true
}

// MarkConnected flags a seat's occupant as connected or not. Returns
// false for an unknown player.
func (g *Game) MarkConnected(id string, connected bool) bool {
	player := g.players[id]
	if player == nil {
		return false
	}
	player.Connected = connected
	return true
}

// Player returns the seated player with the given ID, or nil
func (g *Game) Player(id string) *Player {
	return g.players[id]
}

// PlayerAtSeat returns the player occupying a seat, or nil before the
// seat is filled
func (g *Game) PlayerAtSeat(seat int) *Player {
	if seat < 0 || seat >= len(g.seatOrder) {
		return nil
	}
	return g.players[g.seatOrder[seat]]
}

// SeatOrder returns the player IDs in seat order
func (g *Game) SeatOrder() []string {
	return g.seatOrder
}

// NumPlayers returns the number of seated players
func (g *Game) NumPlayers() int {
	return len(g.players)
}

// Dealer returns the player currently dealing
func (g *Game) Dealer() *Player {
	return g.PlayerAtSeat(g.DealerSeat)
}

func (g *Game) start() {
	g.Phase = Dealing
	g.dealCards()
}

// dealCards shuffles a fresh deck and distributes it: five cards to
// each seat dealt one at a time in seat order, then the turned trump
// card. The three cards left behind stay in the kitty untouched.
func (g *Game) dealCards() {
	g.deck = deck.New(g.rng)
	g.deck.Shuffle()

	for _, id := range g.seatOrder {
		g.players[id].Hand = g.players[id].Hand[:0]
	}

	for i := 0; i < handSize; i++ {
		for _, id := range g.seatOrder {
			card, ok := g.deck.Deal()
			if !ok {
				panic("euchre deck exhausted during deal")
			}
			g.players[id].Hand = append(g.players[id].Hand, card)
		}
	}

	turned, ok := g.deck.Deal()
	if !ok {
		panic("euchre deck exhausted before kitty turn")
	}
	g.TrumpCard = turned
	g.HasTrumpCard = true

	g.Phase = TrumpSelection
	g.TrumpSelectionRound = 1
	g.TrumpSelectionSeat = (g.DealerSeat + 1) % numSeats
}

// startNextRound clears round state, advances the dealer and redeals
func (g *Game) startNextRound() {
	g.clearRoundState()
	g.DealerSeat = (g.DealerSeat + 1) % numSeats
	g.dealCards()
}

func (g *Game) clearRoundState() {
	g.CompletedTricks = nil
	g.CurrentTrick = Trick{}
	g.TrumpSet = false
	g.TrumpSuit = 0
	g.HasTrumpCard = false
	g.TrumpCard = deck.Card{}
	g.TrumpMaker = ""
	g.GoingAlone = ""
}
