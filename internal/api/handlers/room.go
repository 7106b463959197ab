package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/domain"
	"github.com/jarebon/better-jarebon/internal/service"
	"github.com/jarebon/better-jarebon/internal/websocket"
)

type RoomHandler struct {
	roomService *service.RoomService
	hub         *websocket.Hub
}

func NewRoomHandler(roomService *service.RoomService, hub *websocket.Hub) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		hub:         hub,
	}
}

type CreateRoomRequest struct {
	Pages             int    `json:"pages"`
	CharactersPerPage int    `json:"charactersPerPage"`
	TimeLimit         string `json:"timeLimit"`
	TimeLimitSeconds  *int   `json:"timeLimitSeconds"`
}

type CreateRoomResponse struct {
	Success bool   `json:"success"`
	RoomID  string `json:"roomId"`
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	room, err := h.roomService.CreateRoom(r.Context(), service.CreateRoomInput{
		Pages:             req.Pages,
		CharactersPerPage: req.CharactersPerPage,
		TimeLimit:         domain.TimeLimitMode(req.TimeLimit),
		TimeLimitSeconds:  req.TimeLimitSeconds,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CreateRoomResponse{
		Success: true,
		RoomID:  room.ID.String(),
	})
}

type GetRoomResponse struct {
	Success      bool                  `json:"success"`
	Room         *domain.Room          `json:"room"`
	Participants []*domain.Participant `json:"participants"`
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID, ok := parseRoomID(w, r)
	if !ok {
		return
	}

	room, participants, err := h.roomService.GetRoom(r.Context(), roomID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, GetRoomResponse{
		Success:      true,
		Room:         room,
		Participants: participants,
	})
}

type JoinRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type JoinRoomResponse struct {
	Success     bool                `json:"success"`
	Participant *domain.Participant `json:"participant"`
	IsRejoining bool                `json:"isRejoining"`
}

func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	roomID, ok := parseRoomID(w, r)
	if !ok {
		return
	}

	var req JoinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	participant, rejoining, err := h.roomService.JoinRoom(r.Context(), roomID, req.PlayerName)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	// Every join pushes the participant list, rejoins included.
	h.hub.BroadcastParticipants(r.Context(), roomID)

	respondJSON(w, http.StatusOK, JoinRoomResponse{
		Success:     true,
		Participant: participant,
		IsRejoining: rejoining,
	})
}

type StartRoomRequest struct {
	ParticipantID *uint `json:"participantId"`
}

type StartRoomResponse struct {
	Success bool         `json:"success"`
	Room    *domain.Room `json:"room"`
}

func (h *RoomHandler) Start(w http.ResponseWriter, r *http.Request) {
	roomID, ok := parseRoomID(w, r)
	if !ok {
		return
	}

	// The body is optional; it only matters under the owner-only policy.
	var req StartRoomRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	room, err := h.roomService.StartRoom(r.Context(), roomID, req.ParticipantID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	h.hub.BroadcastRoomState(r.Context(), roomID)

	respondJSON(w, http.StatusOK, StartRoomResponse{
		Success: true,
		Room:    room,
	})
}

type DeleteRoomResponse struct {
	Success bool `json:"success"`
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID, ok := parseRoomID(w, r)
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(r.Context(), roomID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, DeleteRoomResponse{Success: true})
}

func parseRoomID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
	if err != nil {
		respondError(w, http.StatusNotFound, domain.ErrRoomNotFound.Error())
		return uuid.Nil, false
	}
	return roomID, true
}
