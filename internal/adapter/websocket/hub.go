// Package websocket fans settled driver and trip updates out to connected
// dashboard clients.
package websocket

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"ridehub/internal/domain/models"
)

const (
	pingInterval = 30 * time.Second
	pongWait     = 60 * time.Second
	readLimit    = 512
)

type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte

	hub *Hub
}

type envelope struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, 16),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.ID] = client
			h.logger.Info("dashboard client connected", "client_id", client.ID)

		case client := <-h.unregister:
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				h.logger.Info("dashboard client disconnected", "client_id", client.ID)
			}

		case msg := <-h.broadcast:
			h.fanOut(msg)
		}
	}
}

// fanOut sends to every connected client; a client whose buffer is full is
// dropped rather than allowed to stall the feed.
func (h *Hub) fanOut(msg envelope) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Warn("failed to marshal feed message", "type", msg.Type, "err", err)
		return
	}
	for id, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(h.clients, id)
		}
	}
}

func (h *Hub) publish(msgType string, payload any) {
	h.broadcast <- envelope{Type: msgType, Payload: payload, Timestamp: time.Now()}
}

// The hub satisfies the services.LiveFeed port.

func (h *Hub) PushDriverLocation(msg models.DriverLocationMessage) {
	h.publish(models.MessageTypeDriverLocation, msg)
}

func (h *Hub) PushDriverStatus(msg models.DriverStatusMessage) {
	h.publish(models.MessageTypeDriverStatus, msg)
}

func (h *Hub) PushTripStatus(msg models.TripStatusMessage) {
	h.publish(models.MessageTypeTripStatus, msg)
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.Conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}

// ReadPump drains the connection; dashboard clients are consumers only, so
// anything beyond pong upkeep is discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(readLimit)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
