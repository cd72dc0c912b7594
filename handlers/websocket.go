package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"

	"cropwatch/models"
	ws "cropwatch/websocket"
)

// WebSocketHandler handles WebSocket connections for the alert stream
type WebSocketHandler struct {
	hub *ws.Hub
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// WebSocket upgrader
var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now
		// In production, you should implement proper origin checking
		return true
	},
}

// StreamAlerts upgrades the connection and subscribes it to assessment and
// alert broadcasts.
func (h *WebSocketHandler) StreamAlerts(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection to WebSocket: %v", err)
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	log.Printf("WebSocket connection established for alert stream")
}

// HealthCheck returns WebSocket hub statistics
func (h *WebSocketHandler) HealthCheck(c *gin.Context) {
	connectedClients, _ := h.hub.GetStats()

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:           "healthy",
		Service:          "cropwatch-websocket",
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		ConnectedClients: connectedClients,
	})
}
