package testutil

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	gorillaWS "github.com/gorilla/websocket"
	"github.com/jarebon/better-jarebon/internal/websocket"
)

// WSClient is a test WebSocket client
type WSClient struct {
	t        *testing.T
	conn     *gorillaWS.Conn
	messages chan []byte
	errors   chan error
	done     chan struct{}
	mu       sync.Mutex
}

// NewWSClient connects to the given WebSocket URL
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:        t,
		conn:     conn,
		messages: make(chan []byte, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func (c *WSClient) readPump() {
	defer close(c.messages)
	for {
		select {
		case <-c.done:
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				select {
				case <-c.done:
					return
				case c.errors <- err:
				}
				return
			}

			select {
			case c.messages <- data:
			case <-c.done:
				return
			}
		}
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}

// envelope is the minimal decode used to route messages by type.
type envelope struct {
	Type websocket.MessageType `json:"type"`
}

// ExpectMessage waits for a message of the specified type, skipping others
func (c *WSClient) ExpectMessage(msgType websocket.MessageType, timeout time.Duration) []byte {
	c.t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case data := <-c.messages:
			if data == nil {
				c.t.Fatalf("connection closed while waiting for %s", msgType)
			}
			var env envelope
			if err := json.Unmarshal(data, &env); err != nil {
				c.t.Fatalf("failed to decode message envelope: %v", err)
			}
			if env.Type == msgType {
				return data
			}
		case err := <-c.errors:
			c.t.Fatalf("error while waiting for %s: %v", msgType, err)
		case <-deadline:
			c.t.Fatalf("timeout waiting for message type %s", msgType)
		}
	}
}

// ExpectParticipantsUpdate waits for and decodes a participants_update message
func (c *WSClient) ExpectParticipantsUpdate(timeout time.Duration) *websocket.ParticipantsUpdatePayload {
	c.t.Helper()

	data := c.ExpectMessage(websocket.MessageTypeParticipantsUpdate, timeout)

	var payload websocket.ParticipantsUpdatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.t.Fatalf("failed to decode participants update: %v", err)
	}

	return &payload
}

// ExpectRoomStateUpdate waits for and decodes a room_state_update message
func (c *WSClient) ExpectRoomStateUpdate(timeout time.Duration) *websocket.RoomStateUpdatePayload {
	c.t.Helper()

	data := c.ExpectMessage(websocket.MessageTypeRoomStateUpdate, timeout)

	var payload websocket.RoomStateUpdatePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.t.Fatalf("failed to decode room state update: %v", err)
	}

	return &payload
}

// ExpectNoMessage verifies no messages are received within timeout
func (c *WSClient) ExpectNoMessage(timeout time.Duration) {
	c.t.Helper()

	select {
	case data := <-c.messages:
		if data != nil {
			c.t.Fatalf("unexpected message received: %s", string(data))
		}
	case <-time.After(timeout):
		// Expected
	}
}

// DrainMessages drains buffered messages, waiting briefly for the channel to settle
func (c *WSClient) DrainMessages() {
	deadline := time.After(100 * time.Millisecond)
	for {
		select {
		case data := <-c.messages:
			if data == nil {
				return
			}
			deadline = time.After(50 * time.Millisecond)
		case <-deadline:
			return
		case <-c.done:
			return
		}
	}
}
