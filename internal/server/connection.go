package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/cardroom/euchre/internal/deck"
	"github.com/cardroom/euchre/internal/game"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var ErrConnectionClosed = websocket.ErrCloseSent

// Connection represents a WebSocket connection to a client
type Connection struct {
	conn        *websocket.Conn
	send        chan *Message
	playerID    string
	logger      *log.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once
	gameService *GameService
}

// NewConnection creates a new connection wrapper for an authenticated
// player ID
func NewConnection(conn *websocket.Conn, playerID string, logger *log.Logger, gameService *GameService) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:        conn,
		send:        make(chan *Message, 256),
		playerID:    playerID,
		logger:      logger.WithPrefix("conn").With("player", playerID),
		ctx:         ctx,
		cancel:      cancel,
		gameService: gameService,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// PlayerID returns the player this connection belongs to
func (c *Connection) PlayerID() string {
	return c.playerID
}

// SendMessage sends a message to the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed during shutdown
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			break
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type)

	if c.gameService == nil {
		c.sendError("service_unavailable", "Game service not available")
		return
	}

	switch msg.Type {
	case MessageTypeCreateRoom:
		var data CreateRoomData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse create room data")
			return
		}
		c.gameService.CreateRoom(c.playerID, data.PlayerName)

	case MessageTypeJoinRoom:
		var data JoinRoomData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse join room data")
			return
		}
		c.gameService.JoinRoom(data.RoomCode, c.playerID, data.PlayerName)

	case MessageTypeLeaveRoom:
		c.gameService.LeaveRoom(c.playerID)

	case MessageTypeCheckReconnection:
		c.gameService.CheckReconnection(c.playerID)

	case MessageTypeGetGameState:
		c.gameService.SendGameState(c.playerID)

	case MessageTypeTrumpSelection:
		var data TrumpSelectionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse trump selection data")
			return
		}
		action, suit, err := parseBid(data)
		if err != nil {
			c.sendError("invalid_message", err.Error())
			return
		}
		if err := c.gameService.SubmitBid(c.playerID, action, suit); err != nil {
			c.sendError("illegal_action", err.Error())
		}

	case MessageTypeGoingAlone:
		var data GoingAloneData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse going alone data")
			return
		}
		if err := c.gameService.SubmitGoAlone(c.playerID, data.GoingAlone); err != nil {
			c.sendError("illegal_action", err.Error())
		}

	case MessageTypeDiscardCard:
		var data CardActionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse discard data")
			return
		}
		if err := c.gameService.SubmitDiscard(c.playerID, data.Card); err != nil {
			c.sendError("illegal_action", err.Error())
		}

	case MessageTypePlayCard:
		var data CardActionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse play card data")
			return
		}
		if err := c.gameService.SubmitPlay(c.playerID, data.Card); err != nil {
			c.sendError("illegal_action", err.Error())
		}

	case MessageTypeAddAIPlayer:
		c.gameService.AddAIPlayer(c.playerID)

	case MessageTypeStartGameWithAI:
		c.gameService.StartGameWithAI(c.playerID)

	default:
		c.sendError("unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

// parseBid maps the wire-level trump selection message onto the game's
// bid actions
func parseBid(data TrumpSelectionData) (game.BidAction, deck.Suit, error) {
	switch data.Action {
	case "order_up":
		return game.OrderUp, 0, nil
	case "pass":
		return game.Pass, 0, nil
	case "name_trump":
		suit, err := deck.ParseSuit(data.Suit)
		if err != nil {
			return 0, 0, err
		}
		return game.NameTrump, suit, nil
	default:
		return 0, 0, fmt.Errorf("unknown trump selection action: %q", data.Action)
	}
}

// sendError sends an error message to the client
func (c *Connection) sendError(code, message string) {
	errorMsg, err := NewMessage(MessageTypeError, ErrorData{
		Code:    code,
		Message: message,
	})
	if err != nil {
		c.logger.Error("Failed to create error message", "error", err)
		return
	}

	_ = c.SendMessage(errorMsg)
}
