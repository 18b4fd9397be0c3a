package server

// MessageType represents a WebSocket message type with type safety
type MessageType string

// WebSocket message type constants for the room protocol
const (
	// Client to server messages
	MessageTypeCreateRoom        MessageType = "create_room"
	MessageTypeJoinRoom          MessageType = "join_room"
	MessageTypeLeaveRoom         MessageType = "leave_room"
	MessageTypeCheckReconnection MessageType = "check_reconnection"
	MessageTypeGetGameState      MessageType = "get_game_state"
	MessageTypeTrumpSelection    MessageType = "trump_selection"
	MessageTypeGoingAlone        MessageType = "going_alone"
	MessageTypeDiscardCard       MessageType = "discard_card"
	MessageTypePlayCard          MessageType = "play_card"
	MessageTypeAddAIPlayer       MessageType = "add_ai_player"
	MessageTypeStartGameWithAI   MessageType = "start_game_with_ai"

	// Server to client messages
	MessageTypeRoomCreated             MessageType = "room_created"
	MessageTypeRoomJoined              MessageType = "room_joined"
	MessageTypeLeftRoom                MessageType = "left_room"
	MessageTypeGameState               MessageType = "game_state"
	MessageTypeReconnected             MessageType = "reconnected"
	MessageTypePlayerReconnected       MessageType = "player_reconnected"
	MessageTypeNoReconnectionAvailable MessageType = "no_reconnection_available"
	MessageTypeError                   MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
