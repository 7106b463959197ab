package handlers

import (
	"log"
	"net/http"

	ws "github.com/gorilla/websocket"
	"github.com/jarebon/better-jarebon/internal/service"
	"github.com/jarebon/better-jarebon/internal/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // rooms are joined by shared link, any origin may connect
	},
}

type WebSocketHandler struct {
	hub         *websocket.Hub
	roomService *service.RoomService
}

func NewWebSocketHandler(hub *websocket.Hub, roomService *service.RoomService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		roomService: roomService,
	}
}

// Handle upgrades GET /ws/rooms/{roomID} and subscribes the socket to that
// room's topic.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, ok := parseRoomID(w, r)
	if !ok {
		return
	}

	// Reject before upgrading so the client gets a plain 404.
	if _, _, err := h.roomService.GetRoom(r.Context(), roomID); err != nil {
		respondDomainError(w, err)
		return
	}

	playerName := r.URL.Query().Get("playerName")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	client := websocket.NewClient(h.hub, conn, roomID, playerName)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
