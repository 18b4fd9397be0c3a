package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardroom/euchre/internal/deck"
	"github.com/cardroom/euchre/internal/game"
)

func TestNewMessageRoundTrip(t *testing.T) {
	msg, err := NewMessage(MessageTypeRoomCreated, RoomCreatedData{RoomCode: "ABCDEF", Success: true})
	require.NoError(t, err)
	assert.Equal(t, MessageTypeRoomCreated, msg.Type)
	assert.False(t, msg.Timestamp.IsZero())

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded Message
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, MessageTypeRoomCreated, decoded.Type)

	var data RoomCreatedData
	require.NoError(t, json.Unmarshal(decoded.Data, &data))
	assert.Equal(t, "ABCDEF", data.RoomCode)
	assert.True(t, data.Success)
}

func TestNewMessageNilData(t *testing.T) {
	msg, err := NewMessage(MessageTypeNoReconnectionAvailable, nil)
	require.NoError(t, err)
	assert.Nil(t, msg.Data)
}

func TestParseBid(t *testing.T) {
	tests := []struct {
		name       string
		data       TrumpSelectionData
		wantAction game.BidAction
		wantSuit   deck.Suit
		wantErr    bool
	}{
		{
			name:       "pass",
			data:       TrumpSelectionData{Action: "pass"},
			wantAction: game.Pass,
		},
		{
			name:       "order up",
			data:       TrumpSelectionData{Action: "order_up"},
			wantAction: game.OrderUp,
		},
		{
			name:       "name trump",
			data:       TrumpSelectionData{Action: "name_trump", Suit: "spades"},
			wantAction: game.NameTrump,
			wantSuit:   deck.Spades,
		},
		{
			name:    "name trump bad suit",
			data:    TrumpSelectionData{Action: "name_trump", Suit: "swords"},
			wantErr: true,
		},
		{
			name:    "unknown action",
			data:    TrumpSelectionData{Action: "raise"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, suit, err := parseBid(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantSuit, suit)
		})
	}
}
