package websocket

import (
	"encoding/json"

	"github.com/jarebon/better-jarebon/internal/domain"
)

type MessageType string

const (
	// Sent after a participant joins the room.
	MessageTypeParticipantsUpdate MessageType = "participants_update"
	// Sent after any phase or round transition. Clients treat both message
	// types as a cue to re-fetch the full game state, not as deltas.
	MessageTypeRoomStateUpdate MessageType = "room_state_update"
)

type ParticipantsUpdatePayload struct {
	Type         MessageType           `json:"type"`
	Participants []*domain.Participant `json:"participants"`
}

type RoomStateUpdatePayload struct {
	Type         MessageType           `json:"type"`
	Room         *domain.Room          `json:"room"`
	Participants []*domain.Participant `json:"participants"`
	Titles       []*domain.Title       `json:"titles"`
}

func NewParticipantsUpdate(participants []*domain.Participant) ([]byte, error) {
	return json.Marshal(ParticipantsUpdatePayload{
		Type:         MessageTypeParticipantsUpdate,
		Participants: participants,
	})
}

func NewRoomStateUpdate(room *domain.Room, participants []*domain.Participant, titles []*domain.Title) ([]byte, error) {
	return json.Marshal(RoomStateUpdatePayload{
		Type:         MessageTypeRoomStateUpdate,
		Room:         room,
		Participants: participants,
		Titles:       titles,
	})
}
