package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
)

const redisPubSubChannel = "kedai:notifications"

// Hub manages WebSocket clients and pushes notifications to the
// browsing session they belong to
type Hub struct {
	// Registered clients grouped by session ID
	clients map[string]map[*Client]bool

	// Register/unregister channels
	register   chan *Client
	unregister chan *Client

	// Broadcast to a specific session
	broadcast chan *targetedMessage

	mu          sync.RWMutex
	redisClient *redis.Client
	ctx         context.Context
	cancel      context.CancelFunc
}

type targetedMessage struct {
	SessionID string
	Data      []byte
}

// NewHub creates a new Hub. The Redis client is optional; without one
// the hub only reaches clients connected to this instance.
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:     make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan *targetedMessage, 256),
		redisClient: redisClient,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	// Start Redis subscriber if Redis is available
	if h.redisClient != nil {
		go h.subscribeRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.sessionID] == nil {
				h.clients[client.sessionID] = make(map[*Client]bool)
			}
			h.clients[client.sessionID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.sessionID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.sessionID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			if clients, ok := h.clients[msg.SessionID]; ok {
				for client := range clients {
					select {
					case client.send <- msg.Data:
					default:
						close(client.send)
						delete(clients, client)
					}
				}
			}
			h.mu.RUnlock()
		case <-h.ctx.Done():
			return
		}
	}
}

// SendToSession delivers a payload to every connection of the session
// (local + Redis publish). Satisfies the notification sink contract.
func (h *Hub) SendToSession(sessionID string, data []byte) {
	// Local broadcast
	h.broadcast <- &targetedMessage{SessionID: sessionID, Data: data}

	// Publish to Redis for multi-instance support
	if h.redisClient != nil {
		msg := &redisMessage{SessionID: sessionID, Data: data}
		payload, err := json.Marshal(msg)
		if err == nil {
			h.redisClient.Publish(h.ctx, redisPubSubChannel, payload) //nolint:errcheck
		}
	}
}

type redisMessage struct {
	SessionID string `json:"session_id"`
	Data      []byte `json:"data"`
}

// subscribeRedis listens for notifications from other instances
func (h *Hub) subscribeRedis() {
	pubsub := h.redisClient.Subscribe(h.ctx, redisPubSubChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var rm redisMessage
			if err := json.Unmarshal([]byte(msg.Payload), &rm); err == nil {
				// Only local broadcast (don't re-publish to Redis)
				h.broadcast <- &targetedMessage{SessionID: rm.SessionID, Data: rm.Data}
			}
		case <-h.ctx.Done():
			return
		}
	}
}

// Stop gracefully shuts down the hub
func (h *Hub) Stop() {
	h.cancel()
}
