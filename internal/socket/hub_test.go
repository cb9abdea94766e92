package socket

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(hub *Hub, userID string) *Client {
	return &Client{
		hub:    hub,
		send:   make(chan []byte, 32),
		userID: userID,
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient(hub, "user-1")
	hub.register <- client

	assert.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 5*time.Millisecond)

	hub.unregister <- client

	assert.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := newTestClient(hub, "user-a")
	b := newTestClient(hub, "user-b")
	hub.register <- a
	hub.register <- b

	assert.Eventually(t, func() bool {
		return hub.ClientCount() == 2
	}, time.Second, 5*time.Millisecond)

	hub.Broadcast(Event{Type: EventProjectCreated, Payload: map[string]string{"slug": "enugu-estate"}})

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			assert.Contains(t, string(msg), EventProjectCreated)
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

// ClientCount is read from request handlers while Run mutates the client set,
// so the two must be safe to call concurrently.
func TestHubClientCountConcurrentWithChurn(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			c := newTestClient(hub, "churn")
			hub.register <- c
			hub.unregister <- c
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			n := hub.ClientCount()
			assert.GreaterOrEqual(t, n, 0)
		}
	}()

	wg.Wait()
}
