package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"cropwatch/metrics"
	"cropwatch/models"
)

// Hub manages WebSocket connections and broadcasting
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Inbound messages from clients
	broadcast chan []byte

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	// Mutex for thread-safe operations
	mutex sync.RWMutex

	// Statistics
	connectedClients int
	lastBroadcast    time.Time
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mutex.Lock()
			h.clients[client] = true
			h.connectedClients = len(h.clients)
			h.mutex.Unlock()
			metrics.WebSocketClients.Set(float64(h.connectedClients))
			log.Printf("Client connected. Total clients: %d", h.connectedClients)

		case client := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.connectedClients = len(h.clients)
			}
			h.mutex.Unlock()
			metrics.WebSocketClients.Set(float64(h.connectedClients))
			log.Printf("Client disconnected. Total clients: %d", h.connectedClients)

		case message := <-h.broadcast:
			h.mutex.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.connectedClients = len(h.clients)
			h.mutex.RUnlock()
			metrics.WebSocketClients.Set(float64(h.connectedClients))
		}
	}
}

// BroadcastAssessment pushes a fresh check-in assessment to all connected clients
func (h *Hub) BroadcastAssessment(checkIn *models.CheckIn) {
	h.broadcastMessage("assessment", checkIn)
}

// BroadcastAlerts pushes a batch of alerts to all connected clients
func (h *Hub) BroadcastAlerts(farmerID string, alerts []models.Alert) {
	if len(alerts) == 0 {
		return
	}
	h.broadcastMessage("alerts", map[string]interface{}{
		"farmer_id": farmerID,
		"alerts":    alerts,
	})
}

func (h *Hub) broadcastMessage(msgType string, data interface{}) {
	message := models.BroadcastMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}

	h.mutex.Lock()
	h.lastBroadcast = message.Timestamp
	h.mutex.Unlock()

	h.broadcast <- payload
}

// GetStats returns current hub statistics
func (h *Hub) GetStats() (int, time.Time) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.connectedClients, h.lastBroadcast
}
