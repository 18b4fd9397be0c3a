package server

import (
	"time"

	"github.com/coder/quartz"

	"github.com/cardroom/euchre/internal/ai"
	"github.com/cardroom/euchre/internal/deck"
	"github.com/cardroom/euchre/internal/game"
)

// ThinkDelay bounds the simulated AI thinking time
type ThinkDelay struct {
	Min time.Duration
	Max time.Duration
}

// DefaultThinkDelay matches a human-feeling pause before AI actions
var DefaultThinkDelay = ThinkDelay{Min: 1500 * time.Millisecond, Max: 3500 * time.Millisecond}

// pendingDecision is one scheduled AI decision. The generation counter
// lets a fired timer detect that it was superseded or canceled while
// it waited for the room lock.
type pendingDecision struct {
	timer    *quartz.Timer
	seat     int
	playerID string
	gen      uint64
}

// checkAITurn inspects the room after a state change and, if the seat
// now expected to act is an AI, schedules exactly one delayed decision
// for it. Any previously pending decision is canceled first, so the
// dispatcher can never stack duplicate actions. Caller holds room.mu.
func (gs *GameService) checkAITurn(room *Room) {
	gs.cancelPending(room)

	if room.closed {
		return
	}

	seat, ok := expectedActor(room.game)
	if !ok {
		return
	}
	player := room.game.PlayerAtSeat(seat)
	if player == nil || !player.IsAI {
		return
	}

	room.nextGen++
	pending := &pendingDecision{
		seat:     seat,
		playerID: player.ID,
		gen:      room.nextGen,
	}

	delay := gs.thinkDelay.Min
	if spread := gs.thinkDelay.Max - gs.thinkDelay.Min; spread > 0 {
		delay += time.Duration(room.rng.Int64N(int64(spread)))
	}

	pending.timer = gs.clock.AfterFunc(delay, func() {
		gs.fireAIDecision(room, pending)
	})
	room.pending = pending

	gs.logger.Debug("Scheduled AI decision", "room", room.Code, "player", player.ID, "seat", seat, "delay", delay)
}

// cancelPending stops the room's pending AI decision, if any. Caller
// holds room.mu. A timer that already fired and is waiting on the lock
// is invalidated through the generation check in fireAIDecision.
func (gs *GameService) cancelPending(room *Room) {
	if room.pending == nil {
		return
	}
	room.pending.timer.Stop()
	room.pending = nil
}

// expectedActor returns the seat whose action the game is waiting on
func expectedActor(g *game.Game) (int, bool) {
	switch g.Phase {
	case game.TrumpSelection:
		return g.TrumpSelectionSeat, true
	case game.DealerDiscard:
		return g.DealerSeat, true
	case game.Playing:
		return g.CurrentSeat, true
	default:
		return 0, false
	}
}

// fireAIDecision runs when a thinking delay elapses. The game may have
// moved on while the timer waited, so everything is re-validated under
// the room lock: the room must still be live, the decision must still
// be the pending one, the same occupant must still hold the seat, and
// that seat must still be the expected actor. A stale decision is
// dropped, never applied.
func (gs *GameService) fireAIDecision(room *Room, pending *pendingDecision) {
	room.mu.Lock()
	defer room.mu.Unlock()

	if room.closed || room.pending == nil || room.pending.gen != pending.gen {
		gs.logger.Warn("Dropping stale AI decision", "room", room.Code, "player", pending.playerID)
		return
	}
	room.pending = nil

	seat, ok := expectedActor(room.game)
	if !ok || seat != pending.seat {
		gs.logger.Warn("Dropping stale AI decision", "room", room.Code, "player", pending.playerID, "seat", pending.seat)
		return
	}
	player := room.game.PlayerAtSeat(seat)
	if player == nil || player.ID != pending.playerID || !player.IsAI {
		gs.logger.Warn("Dropping stale AI decision", "room", room.Code, "player", pending.playerID, "seat", pending.seat)
		return
	}
	engine := room.ais[player.ID]
	if engine == nil {
		gs.logger.Warn("Dropping AI decision with no engine", "room", room.Code, "player", pending.playerID)
		return
	}

	if err := gs.applyAIDecision(room, player, engine); err != nil {
		gs.logger.Error("AI decision rejected", "room", room.Code, "player", player.ID, "error", err)
		return
	}

	gs.broadcastState(room)
}

// applyAIDecision asks the engine for one action at the current
// decision point and applies it through the same mutation path human
// actions take. Caller holds room.mu.
func (gs *GameService) applyAIDecision(room *Room, player *game.Player, engine *ai.Engine) error {
	g := room.game

	switch g.Phase {
	case game.TrumpSelection:
		isDealer := g.DealerSeat == player.Position
		call, suit := engine.DecideBid(player.Hand, g.TrumpCard, isDealer, g.TrumpSelectionRound)
		if !call {
			return g.HandleBid(player.ID, game.Pass, 0)
		}

		action := game.OrderUp
		if g.TrumpSelectionRound == 2 {
			action = game.NameTrump
		}
		if err := g.HandleBid(player.ID, action, suit); err != nil {
			return err
		}
		if engine.DecideGoAlone(player.Hand, suit) {
			return g.HandleGoAlone(player.ID, true)
		}
		return nil

	case game.DealerDiscard:
		card := engine.ChooseDiscard(player.Hand, g.TrumpSuit)
		return g.HandleDiscard(player.ID, card)

	case game.Playing:
		legal := g.LegalPlays(player.ID)

		var card deck.Card
		if len(g.CurrentTrick.Cards) == 0 {
			card = engine.ChooseLead(legal, g.TrumpSuit)
		} else {
			trick := make([]deck.Card, len(g.CurrentTrick.Cards))
			for i, played := range g.CurrentTrick.Cards {
				trick[i] = played.Card
			}
			card = engine.ChooseFollow(legal, trick, g.TrumpSuit)
		}
		return g.PlayCard(player.ID, card)

	default:
		return game.ErrWrongPhase
	}
}
