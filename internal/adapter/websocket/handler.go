package websocket

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades a dashboard connection and attaches it to the hub.
func ServeWS(hub *Hub, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", "err", err)
			return
		}

		client := &Client{
			ID:   uuid.NewString(),
			Conn: conn,
			Send: make(chan []byte, 32),
			hub:  hub,
		}
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}
