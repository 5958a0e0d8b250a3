package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// hubBufferSize bounds queued broadcasts and per-client sends
	hubBufferSize = 64

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Message is the envelope streamed to websocket clients
type Message struct {
	Type string             `json:"type"`
	Data *models.MatchState `json:"data,omitempty"`
}

// client is a single websocket connection
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans match state out to connected websocket clients
type Hub struct {
	clients    map[*client]struct{}
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	done       chan struct{}
	log        logrus.FieldLogger
}

// NewHub creates a hub; call Run to start delivering
func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan []byte, hubBufferSize),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run delivers broadcasts until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.log.WithField("clients", len(h.clients)).Debug("websocket client registered")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.log.WithField("clients", len(h.clients)).Debug("websocket client unregistered")

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow client
					delete(h.clients, c)
					close(c.send)
					h.log.Warn("dropped slow websocket client")
				}
			}
		}
	}
}

// Publish queues a state update for every client. It never blocks so it
// can be used as a match observer.
func (h *Hub) Publish(state *models.MatchState) {
	data, err := encodeMessage("state", state)
	if err != nil {
		h.log.WithError(err).Error("failed to encode match state")
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.log.Warn("websocket broadcast queue full, dropping update")
	}
}

// add registers c unless the hub has stopped
func (h *Hub) add(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func encodeMessage(msgType string, state *models.MatchState) ([]byte, error) {
	return json.Marshal(&Message{Type: msgType, Data: state})
}

// readPump discards client input and unregisters on disconnect
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.WithError(err).Debug("websocket read failed")
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
