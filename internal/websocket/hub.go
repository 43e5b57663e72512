package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"noteverse-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const fanoutChannel = "notification_events"

type delivery struct {
	userId  uuid.UUID
	payload []byte
}

// Hub tracks the websocket connections of each user and fans notifications
// out to them. With redis configured, deliveries are also published to the
// other instances of the cluster.
//
// All sends and channel closes happen on Run's goroutine, so a client's send
// channel has exactly one closer.
type Hub struct {
	// A user can be connected from several devices at once.
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client
	deliver    chan delivery

	mu sync.RWMutex

	rdb    *redis.Client
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan delivery, 64),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.consumeFanout()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserId] = append(h.clients[client.UserId], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "client connected", map[string]interface{}{"user_id": client.UserId})

		case client := <-h.unregister:
			h.dropClient(client)

		case d := <-h.deliver:
			h.mu.RLock()
			clients := append([]*Client(nil), h.clients[d.userId]...)
			h.mu.RUnlock()

			for _, client := range clients {
				select {
				case client.send <- d.payload:
				default:
					// Slow consumer, drop the connection rather than block
					// the hub.
					h.logger.Warn("Hub", "send buffer full, dropping client", map[string]interface{}{"user_id": d.userId})
					h.dropClient(client)
				}
			}
		}
	}
}

// dropClient removes the client and closes its send channel. Removal guards
// the close: a client that already left the map is never closed twice.
func (h *Hub) dropClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.UserId]
	for i, c := range clients {
		if c == client {
			h.clients[client.UserId] = append(clients[:i], clients[i+1:]...)
			close(client.send)
			break
		}
	}
	if len(h.clients[client.UserId]) == 0 {
		delete(h.clients, client.UserId)
	}
}

// Deliver pushes a serialized notification to every connection of the user.
// With redis configured it goes through the fanout channel, which this
// instance subscribes to as well, so every instance of the cluster delivers
// exactly once.
func (h *Hub) Deliver(userId uuid.UUID, payload []byte) {
	if h.rdb == nil {
		h.deliver <- delivery{userId: userId, payload: payload}
		return
	}

	envelope, _ := json.Marshal(fanoutEnvelope{
		TargetUserId: userId.String(),
		Payload:      payload,
	})
	if err := h.rdb.Publish(context.Background(), fanoutChannel, envelope).Err(); err != nil {
		h.logger.Warn("Hub", "fanout publish failed", map[string]interface{}{"error": err.Error()})
		h.deliver <- delivery{userId: userId, payload: payload}
	}
}

type fanoutEnvelope struct {
	TargetUserId string          `json:"target_user_id"`
	Payload      json.RawMessage `json:"payload"`
}

func (h *Hub) consumeFanout() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, fanoutChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var envelope fanoutEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			h.logger.Warn("Hub", "malformed fanout message", map[string]interface{}{"error": err.Error()})
			continue
		}
		userId, err := uuid.Parse(envelope.TargetUserId)
		if err != nil {
			continue
		}
		h.deliver <- delivery{userId: userId, payload: envelope.Payload}
	}
}
