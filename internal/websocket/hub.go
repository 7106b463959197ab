package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/repository"
)

// Hub owns the room-id -> topic registry. It is constructed once at server
// start and injected into the handlers, so tests can run isolated instances.
type Hub struct {
	topics     map[uuid.UUID]*Topic
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	done       chan struct{}
	stopped    bool

	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
	titleRepo       repository.TitleRepository

	mu sync.RWMutex
}

func NewHub(
	roomRepo repository.RoomRepository,
	participantRepo repository.ParticipantRepository,
	titleRepo repository.TitleRepository,
) *Hub {
	return &Hub{
		topics:          make(map[uuid.UUID]*Topic),
		clients:         make(map[*Client]bool),
		register:        make(chan *Client),
		unregister:      make(chan *Client),
		stop:            make(chan struct{}),
		done:            make(chan struct{}),
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
		titleRepo:       titleRepo,
	}
}

// Run processes registration events until Stop is called.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.topics = make(map[uuid.UUID]*Topic)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
				topic, exists := h.topics[client.roomID]
				if !exists {
					topic = NewTopic(client.roomID)
					h.topics[client.roomID] = topic
				}
				topic.AddClient(client)
			}
			h.mu.Unlock()

			// Fresh subscribers get an immediate snapshot so a reconnect
			// converges without waiting for the next mutation.
			h.sendSnapshot(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if !h.stopped {
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					client.Close()

					if topic, exists := h.topics[client.roomID]; exists {
						topic.RemoveClient(client)
						if topic.ClientCount() == 0 {
							delete(h.topics, client.roomID)
						}
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop gracefully shuts down the hub. It blocks until Run has exited.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	close(h.stop)
	<-h.done
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client, tolerating a hub that is already stopping.
func (h *Hub) Unregister(client *Client) {
	h.mu.RLock()
	stopped := h.stopped
	h.mu.RUnlock()

	if stopped {
		return
	}

	select {
	case h.unregister <- client:
	default:
	}
}

func (h *Hub) getTopic(roomID uuid.UUID) *Topic {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.topics[roomID]
}

func (h *Hub) sendSnapshot(client *Client) {
	participants, err := h.participantRepo.GetByRoomID(context.Background(), client.roomID)
	if err != nil {
		log.Printf("hub: snapshot load failed for room %s: %v", client.roomID, err)
		return
	}

	data, err := NewParticipantsUpdate(participants)
	if err != nil {
		log.Printf("hub: snapshot marshal failed for room %s: %v", client.roomID, err)
		return
	}
	client.trySend(data)
}

// BroadcastParticipants pushes the current participant list to every socket
// subscribed to the room. Failures are logged and never surfaced to the
// request that triggered the broadcast.
func (h *Hub) BroadcastParticipants(ctx context.Context, roomID uuid.UUID) {
	topic := h.getTopic(roomID)
	if topic == nil {
		return
	}

	participants, err := h.participantRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		log.Printf("hub: participants load failed for room %s: %v", roomID, err)
		return
	}

	data, err := NewParticipantsUpdate(participants)
	if err != nil {
		log.Printf("hub: participants marshal failed for room %s: %v", roomID, err)
		return
	}

	topic.Broadcast(data)
}

// BroadcastRoomState pushes a full room snapshot after a phase or round
// transition.
func (h *Hub) BroadcastRoomState(ctx context.Context, roomID uuid.UUID) {
	topic := h.getTopic(roomID)
	if topic == nil {
		return
	}

	room, err := h.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		log.Printf("hub: room load failed for room %s: %v", roomID, err)
		return
	}
	participants, err := h.participantRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		log.Printf("hub: participants load failed for room %s: %v", roomID, err)
		return
	}
	titles, err := h.titleRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		log.Printf("hub: titles load failed for room %s: %v", roomID, err)
		return
	}

	data, err := NewRoomStateUpdate(room, participants, titles)
	if err != nil {
		log.Printf("hub: room state marshal failed for room %s: %v", roomID, err)
		return
	}

	topic.Broadcast(data)
}
