package server

import (
	"fmt"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/cardroom/euchre/internal/ai"
	"github.com/cardroom/euchre/internal/deck"
	"github.com/cardroom/euchre/internal/game"
	"github.com/cardroom/euchre/internal/randutil"
	"github.com/cardroom/euchre/internal/roomcode"
)

// Broadcaster delivers messages to connected players. *Server
// implements it; tests substitute a recorder.
type Broadcaster interface {
	SendToPlayer(playerID string, msg *Message) error
}

// Room is one table: a game, the AI engines seated at it, and the
// pending AI decision timer. All game access goes through mu — each
// room is single-writer-at-a-time.
type Room struct {
	Code string

	mu      sync.Mutex
	game    *game.Game
	ais     map[string]*ai.Engine // playerID -> engine
	rng     *rand.Rand            // shared by game, engines, and think delays
	pending *pendingDecision
	nextGen uint64
	closed  bool
}

// GameService owns every room and applies all game mutations. It is
// the single entry point for both human submissions (via connections)
// and AI decisions (via the turn dispatcher).
type GameService struct {
	mu          sync.RWMutex
	rooms       map[string]*Room  // room code -> room
	playerRooms map[string]string // playerID -> room code
	playerNames map[string]string

	broadcaster Broadcaster
	codes       *roomcode.Generator
	clock       quartz.Clock
	rng         *rand.Rand // seeds per-room RNGs and room codes
	logger      *log.Logger

	thinkDelay ThinkDelay
}

// NewGameService creates a game service. clock drives the AI thinking
// delays; pass quartz.NewMock in tests.
func NewGameService(broadcaster Broadcaster, clock quartz.Clock, seed int64, thinkDelay ThinkDelay, logger *log.Logger) *GameService {
	rng := randutil.New(seed)
	return &GameService{
		rooms:       make(map[string]*Room),
		playerRooms: make(map[string]string),
		playerNames: make(map[string]string),
		broadcaster: broadcaster,
		codes:       roomcode.NewGenerator(rng),
		clock:       clock,
		rng:         rng,
		logger:      logger.WithPrefix("game-service"),
		thinkDelay:  thinkDelay,
	}
}

// CreateRoom creates a room with the creator seated in it and tells
// the creator its code.
func (gs *GameService) CreateRoom(playerID, playerName string) {
	gs.mu.Lock()

	code := gs.codes.Generate()
	for gs.rooms[code] != nil {
		code = gs.codes.Generate()
	}

	rng := randutil.New(gs.rng.Int64())
	room := &Room{
		Code: code,
		game: game.New(code, rng),
		ais:  make(map[string]*ai.Engine),
		rng:  rng,
	}
	room.game.AddPlayer(playerID, playerName, false)

	gs.rooms[code] = room
	gs.playerRooms[playerID] = code
	gs.playerNames[playerID] = playerName
	gs.mu.Unlock()

	gs.logger.Info("Room created", "room", code, "player", playerID)
	gs.send(playerID, MessageTypeRoomCreated, RoomCreatedData{RoomCode: code, Success: true})

	room.mu.Lock()
	defer room.mu.Unlock()
	gs.broadcastState(room)
}

// JoinRoom seats a player in an existing room. The 4th join starts
// the game.
func (gs *GameService) JoinRoom(code, playerID, playerName string) {
	code = roomcode.Normalize(code)

	gs.mu.Lock()
	room := gs.rooms[code]
	if room == nil {
		gs.mu.Unlock()
		gs.send(playerID, MessageTypeRoomJoined, RoomJoinedData{RoomCode: code, Success: false, Error: "room not found"})
		return
	}
	gs.mu.Unlock()

	room.mu.Lock()
	ok := room.game.AddPlayer(playerID, playerName, false)
	room.mu.Unlock()

	if !ok {
		gs.send(playerID, MessageTypeRoomJoined, RoomJoinedData{RoomCode: code, Success: false, Error: "room is full"})
		return
	}

	gs.mu.Lock()
	gs.playerRooms[playerID] = code
	gs.playerNames[playerID] = playerName
	gs.mu.Unlock()

	gs.logger.Info("Player joined room", "room", code, "player", playerID)
	gs.send(playerID, MessageTypeRoomJoined, RoomJoinedData{RoomCode: code, Success: true})

	room.mu.Lock()
	defer room.mu.Unlock()
	gs.broadcastState(room)
}

// LeaveRoom removes a player's association with their room. Before the
// game starts the seat is freed; afterwards the player is only marked
// disconnected. A room with no humans left is torn down.
func (gs *GameService) LeaveRoom(playerID string) {
	gs.mu.Lock()
	code, inRoom := gs.playerRooms[playerID]
	var room *Room
	if inRoom {
		room = gs.rooms[code]
		delete(gs.playerRooms, playerID)
		delete(gs.playerNames, playerID)
	}
	gs.mu.Unlock()

	if room != nil {
		room.mu.Lock()
		if !room.game.RemovePlayer(playerID) {
			room.game.MarkConnected(playerID, false)
		}

		humansLeft := 0
		for _, id := range room.game.SeatOrder() {
			p := room.game.Player(id)
			if p != nil && !p.IsAI && p.Connected {
				humansLeft++
			}
		}
		room.mu.Unlock()

		if humansLeft == 0 {
			gs.removeRoom(code)
		} else {
			room.mu.Lock()
			gs.broadcastState(room)
			room.mu.Unlock()
		}
	}

	gs.send(playerID, MessageTypeLeftRoom, LeftRoomData{Success: true})
}

// CheckReconnection restores a returning player's seat if their game
// still exists.
func (gs *GameService) CheckReconnection(playerID string) {
	room := gs.roomFor(playerID)
	if room == nil {
		gs.send(playerID, MessageTypeNoReconnectionAvailable, nil)
		return
	}

	room.mu.Lock()
	if !room.game.MarkConnected(playerID, true) {
		room.mu.Unlock()
		gs.send(playerID, MessageTypeNoReconnectionAvailable, nil)
		return
	}
	view, _ := room.game.View(playerID)
	seatOrder := append([]string(nil), room.game.SeatOrder()...)
	room.mu.Unlock()

	gs.send(playerID, MessageTypeReconnected, GameStateData{GameState: view})

	gs.mu.RLock()
	name := gs.playerNames[playerID]
	gs.mu.RUnlock()

	notice := PlayerReconnectedData{PlayerID: playerID, PlayerName: name}
	for _, id := range seatOrder {
		if id != playerID {
			gs.send(id, MessageTypePlayerReconnected, notice)
		}
	}
}

// PlayerDisconnected marks a seat disconnected. The game carries on;
// the seat is restored on reconnection.
func (gs *GameService) PlayerDisconnected(playerID string) {
	room := gs.roomFor(playerID)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.game.MarkConnected(playerID, false) {
		gs.logger.Info("Player disconnected from room", "room", room.Code, "player", playerID)
		gs.broadcastState(room)
	}
}

// SendGameState sends a player their current view on demand
func (gs *GameService) SendGameState(playerID string) {
	room := gs.roomFor(playerID)
	if room == nil {
		return
	}

	room.mu.Lock()
	view, ok := room.game.View(playerID)
	room.mu.Unlock()

	if ok {
		gs.send(playerID, MessageTypeGameState, GameStateData{GameState: view})
	}
}

// AddAIPlayer fills one empty seat in the requester's room with an AI
// player.
func (gs *GameService) AddAIPlayer(requesterID string) {
	room := gs.roomFor(requesterID)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	gs.addAILocked(room)
	gs.broadcastState(room)
}

// StartGameWithAI fills every remaining seat with AI players; the 4th
// seat filling starts the game.
func (gs *GameService) StartGameWithAI(requesterID string) {
	room := gs.roomFor(requesterID)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	for room.game.NumPlayers() < 4 {
		if !gs.addAILocked(room) {
			break
		}
	}
	gs.broadcastState(room)
}

// addAILocked seats one AI player. Caller holds room.mu.
func (gs *GameService) addAILocked(room *Room) bool {
	if room.game.NumPlayers() >= 4 {
		return false
	}

	personality := ai.Roster[room.rng.IntN(len(ai.Roster))]
	id := fmt.Sprintf("ai_%d_%s", room.game.NumPlayers(), room.Code)
	engine := ai.New(personality, room.rng)

	if !room.game.AddPlayer(id, personality.Name, true) {
		return false
	}
	room.ais[id] = engine

	gs.mu.Lock()
	gs.playerRooms[id] = room.Code
	gs.playerNames[id] = personality.Name
	gs.mu.Unlock()

	gs.logger.Info("AI player added", "room", room.Code, "player", id, "personality", personality.Name)
	return true
}

// SubmitBid applies a trump-selection action for a human player
func (gs *GameService) SubmitBid(playerID string, action game.BidAction, suit deck.Suit) error {
	return gs.mutate(playerID, func(room *Room) error {
		return room.game.HandleBid(playerID, action, suit)
	})
}

// SubmitGoAlone applies the trump maker's go-alone election
func (gs *GameService) SubmitGoAlone(playerID string, alone bool) error {
	return gs.mutate(playerID, func(room *Room) error {
		return room.game.HandleGoAlone(playerID, alone)
	})
}

// SubmitDiscard applies the dealer's discard
func (gs *GameService) SubmitDiscard(playerID string, card deck.Card) error {
	return gs.mutate(playerID, func(room *Room) error {
		return room.game.HandleDiscard(playerID, card)
	})
}

// SubmitPlay plays a card for a human player
func (gs *GameService) SubmitPlay(playerID string, card deck.Card) error {
	return gs.mutate(playerID, func(room *Room) error {
		return room.game.PlayCard(playerID, card)
	})
}

// mutate runs one state-changing operation atomically against the
// player's room and, on success, rebroadcasts and re-arms the turn
// dispatcher.
func (gs *GameService) mutate(playerID string, op func(room *Room) error) error {
	room := gs.roomFor(playerID)
	if room == nil {
		return fmt.Errorf("player %s is not in a room", playerID)
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if err := op(room); err != nil {
		return err
	}
	gs.broadcastState(room)
	return nil
}

// broadcastState sends every seated human their view of the room and
// re-arms the dispatcher. Caller holds room.mu.
func (gs *GameService) broadcastState(room *Room) {
	for _, id := range room.game.SeatOrder() {
		player := room.game.Player(id)
		if player == nil || player.IsAI {
			continue
		}
		if view, ok := room.game.View(id); ok {
			gs.send(id, MessageTypeGameState, GameStateData{GameState: view})
		}
	}

	gs.checkAITurn(room)
}

// roomFor resolves a player's room, or nil
func (gs *GameService) roomFor(playerID string) *Room {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	code, ok := gs.playerRooms[playerID]
	if !ok {
		return nil
	}
	return gs.rooms[code]
}

// removeRoom tears a room down, canceling any pending AI decision
func (gs *GameService) removeRoom(code string) {
	gs.mu.Lock()
	room := gs.rooms[code]
	if room == nil {
		gs.mu.Unlock()
		return
	}
	delete(gs.rooms, code)
	for id, playerCode := range gs.playerRooms {
		if playerCode == code {
			delete(gs.playerRooms, id)
			delete(gs.playerNames, id)
		}
	}
	gs.mu.Unlock()

	room.mu.Lock()
	room.closed = true
	gs.cancelPending(room)
	room.mu.Unlock()

	gs.logger.Info("Room removed", "room", code)
}

// send delivers one message, ignoring delivery failures: AI seats have
// no connection and humans may be disconnected.
func (gs *GameService) send(playerID string, msgType MessageType, data interface{}) {
	msg, err := NewMessage(msgType, data)
	if err != nil {
		gs.logger.Error("Failed to create message", "type", msgType, "error", err)
		return
	}
	_ = gs.broadcaster.SendToPlayer(playerID, msg)
}
