package chat

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/internal/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBufferSize = 64
)

// client is one authenticated WebSocket connection. The identity is bound
// once at handshake time and never changes for the connection's lifetime.
type client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan ServerEvent
	userID primitive.ObjectID
	role   string
}

// enqueue hands an event to the write pump. Events to a client that cannot
// drain its buffer are dropped instead of blocking the room; the client
// recovers the messages on its next join via history replay.
func (c *client) enqueue(evt ServerEvent) {
	select {
	case c.send <- evt:
	default:
		logger.WarnWithFields("chat client send buffer full, dropping event", logger.Fields{
			"connection_id": c.id,
			"user_id":       c.userID.Hex(),
			"event":         evt.Event,
		})
	}
}

// readPump dispatches inbound envelopes until the connection dies. Malformed
// frames get a non-fatal error event; the connection stays open.
func (c *client) readPump() {
	defer func() {
		c.hub.removeClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.DebugWithFields("chat connection closed unexpectedly", logger.Fields{
					"connection_id": c.id,
					"error":         err.Error(),
				})
			}
			return
		}

		var evt ClientEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			c.enqueue(errorEvent("malformed event"))
			continue
		}

		switch evt.Event {
		case EventJoinSession:
			var p JoinSessionPayload
			if err := json.Unmarshal(evt.Data, &p); err != nil {
				c.enqueue(errorEvent("malformed join_session payload"))
				continue
			}
			c.hub.handleJoin(c, p)
		case EventSendMessage:
			var p SendMessagePayload
			if err := json.Unmarshal(evt.Data, &p); err != nil {
				c.enqueue(errorEvent("malformed send_message payload"))
				continue
			}
			c.hub.handleSend(c, p)
		case EventTyping:
			var p TypingPayload
			if err := json.Unmarshal(evt.Data, &p); err != nil {
				c.enqueue(errorEvent("malformed typing payload"))
				continue
			}
			c.hub.handleTyping(c, p)
		default:
			c.enqueue(errorEvent("unknown event"))
		}
	}
}

// writePump serializes outbound events and keeps the connection alive with
// pings. One writer goroutine per connection; gorilla allows at most one
// concurrent writer.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case evt, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
