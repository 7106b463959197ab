package websocket

import (
	"sync"

	"github.com/google/uuid"
)

// Topic holds the live connections subscribed to a single room.
type Topic struct {
	roomID uuid.UUID

	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewTopic(roomID uuid.UUID) *Topic {
	return &Topic{
		roomID:  roomID,
		clients: make(map[*Client]bool),
	}
}

func (t *Topic) AddClient(client *Client) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clients[client] = true
}

func (t *Topic) RemoveClient(client *Client) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.clients, client)
}

func (t *Topic) ClientCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.clients)
}

// Broadcast sends data to every subscribed client. Delivery is best-effort:
// a client with a full buffer drops the message and catches up on its next
// full-state fetch.
func (t *Topic) Broadcast(data []byte) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for client := range t.clients {
		client.trySend(data)
	}
}
