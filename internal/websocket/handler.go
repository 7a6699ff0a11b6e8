package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches a new client connection to the hub and pumps it until
// the peer disconnects.
func ServeWs(hub *Hub, c *websocket.Conn, userID uint) {
	client := &Client{
		Hub:    hub,
		Conn:   c,
		ID:     uuid.NewString(),
		UserID: userID,
		Send:   make(chan []byte, 256),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
