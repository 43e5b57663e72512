package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error { return nil }

func localClientCount(h *Hub, userId uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userId])
}

func TestHubDeliver(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userId := uuid.New()
	client := &Client{hub: hub, UserId: userId, send: make(chan []byte, 1)}
	hub.register <- client

	require.Eventually(t, func() bool {
		return localClientCount(hub, userId) == 1
	}, time.Second, 5*time.Millisecond)

	hub.Deliver(userId, []byte(`{"type":"note.upvoted"}`))

	select {
	case payload := <-client.send:
		assert.JSONEq(t, `{"type":"note.upvoted"}`, string(payload))
	case <-time.After(time.Second):
		t.Fatal("payload was not delivered")
	}
}

func TestHubDropsSlowConsumerOnce(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userId := uuid.New()
	// An unbuffered send channel that nothing reads, so the first delivery
	// already overflows it.
	client := &Client{hub: hub, UserId: userId, send: make(chan []byte)}
	hub.register <- client

	require.Eventually(t, func() bool {
		return localClientCount(hub, userId) == 1
	}, time.Second, 5*time.Millisecond)

	// The first delivery evicts the slow client. The second must find the
	// hub still running and the client gone, not close the channel again.
	hub.Deliver(userId, []byte(`{"seq":1}`))
	hub.Deliver(userId, []byte(`{"seq":2}`))

	require.Eventually(t, func() bool {
		return localClientCount(hub, userId) == 0
	}, time.Second, 5*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open, "send channel should be closed after eviction")

	// The hub must still accept registrations after the eviction.
	replacement := &Client{hub: hub, UserId: userId, send: make(chan []byte, 1)}
	hub.register <- replacement
	require.Eventually(t, func() bool {
		return localClientCount(hub, userId) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestHubUnregisterDeparted(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userId := uuid.New()
	client := &Client{hub: hub, UserId: userId, send: make(chan []byte)}
	hub.register <- client

	require.Eventually(t, func() bool {
		return localClientCount(hub, userId) == 1
	}, time.Second, 5*time.Millisecond)

	// A read pump reports the disconnect while a stalled delivery evicts the
	// same client. Whichever lands second finds nothing to close.
	hub.Deliver(userId, []byte(`{}`))
	hub.unregister <- client

	require.Eventually(t, func() bool {
		return localClientCount(hub, userId) == 0
	}, time.Second, 5*time.Millisecond)
}
