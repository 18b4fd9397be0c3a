package server

import (
	"encoding/json"
	"time"

	"github.com/cardroom/euchre/internal/deck"
	"github.com/cardroom/euchre/internal/game"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	var dataBytes json.RawMessage
	if data != nil {
		var err error
		dataBytes, err = json.Marshal(data)
		if err != nil {
			return nil, err
		}
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type CreateRoomData struct {
	PlayerName string `json:"playerName"`
}

type JoinRoomData struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

type TrumpSelectionData struct {
	Action string `json:"action"`         // "order_up", "name_trump", "pass"
	Suit   string `json:"suit,omitempty"` // only for name_trump
}

type GoingAloneData struct {
	GoingAlone bool `json:"goingAlone"`
}

type CardActionData struct {
	Card deck.Card `json:"card"`
}

// Server → Client Messages

type RoomCreatedData struct {
	RoomCode string `json:"roomCode"`
	Success  bool   `json:"success"`
}

type RoomJoinedData struct {
	RoomCode string `json:"roomCode"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

type LeftRoomData struct {
	Success bool `json:"success"`
}

type GameStateData struct {
	GameState game.PlayerView `json:"gameState"`
}

type PlayerReconnectedData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
