package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jarebon/better-jarebon/internal/domain"
	"github.com/jarebon/better-jarebon/internal/service"
	"github.com/jarebon/better-jarebon/internal/websocket"
)

type GameHandler struct {
	gameService *service.GameService
	hub         *websocket.Hub
}

func NewGameHandler(gameService *service.GameService, hub *websocket.Hub) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		hub:         hub,
	}
}

type SubmitTitleRequest struct {
	ParticipantID uint   `json:"participantId"`
	Title         string `json:"title"`
}

type SubmitTitleResponse struct {
	Success     bool          `json:"success"`
	Title       *domain.Title `json:"title"`
	GameStarted bool          `json:"gameStarted"`
}

func (h *GameHandler) SubmitTitle(w http.ResponseWriter, r *http.Request) {
	roomID, ok := parseRoomID(w, r)
	if !ok {
		return
	}

	var req SubmitTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	title, started, err := h.gameService.SubmitTitle(r.Context(), roomID, req.ParticipantID, req.Title)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if started {
		h.hub.BroadcastRoomState(r.Context(), roomID)
	}

	respondJSON(w, http.StatusOK, SubmitTitleResponse{
		Success:     true,
		Title:       title,
		GameStarted: started,
	})
}

type SubmitPageRequest struct {
	ParticipantID uint   `json:"participantId"`
	TitleID       uint   `json:"titleId"`
	Content       string `json:"content"`
}

type SubmitPageResponse struct {
	Success       bool         `json:"success"`
	Page          *domain.Page `json:"page"`
	RoundAdvanced bool         `json:"roundAdvanced"`
	GameCompleted bool         `json:"gameCompleted"`
}

func (h *GameHandler) SubmitPage(w http.ResponseWriter, r *http.Request) {
	roomID, ok := parseRoomID(w, r)
	if !ok {
		return
	}

	var req SubmitPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, outcome, err := h.gameService.SubmitPage(r.Context(), roomID, req.ParticipantID, req.TitleID, req.Content)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if outcome != domain.RoundOutcomeNone {
		h.hub.BroadcastRoomState(r.Context(), roomID)
	}

	respondJSON(w, http.StatusOK, SubmitPageResponse{
		Success:       true,
		Page:          page,
		RoundAdvanced: outcome == domain.RoundOutcomeAdvance,
		GameCompleted: outcome == domain.RoundOutcomeComplete,
	})
}

type GameStateResponse struct {
	Success      bool                  `json:"success"`
	Room         *domain.Room          `json:"room"`
	Participants []*domain.Participant `json:"participants"`
	Titles       []*domain.Title       `json:"titles"`
	Pages        []*domain.Page        `json:"pages"`
	Assignments  map[uint]uint         `json:"assignments"`
}

func (h *GameHandler) GetGameState(w http.ResponseWriter, r *http.Request) {
	roomID, ok := parseRoomID(w, r)
	if !ok {
		return
	}

	state, err := h.gameService.GetGameState(r.Context(), roomID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, GameStateResponse{
		Success:      true,
		Room:         state.Room,
		Participants: state.Participants,
		Titles:       state.Titles,
		Pages:        state.Pages,
		Assignments:  state.Assignments,
	})
}
