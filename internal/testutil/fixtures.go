package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/domain"
	"gorm.io/gorm"
)

// RoomBuilder creates test rooms with a builder pattern
type RoomBuilder struct {
	pages             int
	charactersPerPage int
	timeLimit         domain.TimeLimitMode
	timeLimitSeconds  *int
	status            domain.RoomStatus
	currentRound      int
}

// NewRoomBuilder creates a new RoomBuilder with default values
func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		pages:             3,
		charactersPerPage: 200,
		timeLimit:         domain.TimeLimitDisabled,
		status:            domain.RoomStatusWaiting,
	}
}

// WithPages sets the page count
func (b *RoomBuilder) WithPages(pages int) *RoomBuilder {
	b.pages = pages
	return b
}

// WithCharactersPerPage sets the per-page character cap
func (b *RoomBuilder) WithCharactersPerPage(chars int) *RoomBuilder {
	b.charactersPerPage = chars
	return b
}

// WithTimeLimit sets the time limit mode and seconds
func (b *RoomBuilder) WithTimeLimit(mode domain.TimeLimitMode, seconds int) *RoomBuilder {
	b.timeLimit = mode
	b.timeLimitSeconds = &seconds
	return b
}

// WithStatus sets the room status
func (b *RoomBuilder) WithStatus(status domain.RoomStatus) *RoomBuilder {
	b.status = status
	return b
}

// WithCurrentRound sets the current round
func (b *RoomBuilder) WithCurrentRound(round int) *RoomBuilder {
	b.currentRound = round
	return b
}

// Build creates the room in the database
func (b *RoomBuilder) Build(t *testing.T, db *gorm.DB) *domain.Room {
	t.Helper()

	room := &domain.Room{
		ID:                uuid.New(),
		Pages:             b.pages,
		CharactersPerPage: b.charactersPerPage,
		TimeLimit:         b.timeLimit,
		TimeLimitSeconds:  b.timeLimitSeconds,
		Status:            b.status,
		CurrentRound:      b.currentRound,
		CreatedAt:         time.Now(),
	}

	if err := db.Create(room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}

	return room
}

// CreateParticipant inserts a participant row directly
func CreateParticipant(t *testing.T, db *gorm.DB, roomID uuid.UUID, name string, isOwner bool) *domain.Participant {
	t.Helper()

	participant := &domain.Participant{
		RoomID:     roomID,
		PlayerName: name,
		IsOwner:    isOwner,
		JoinedAt:   time.Now(),
	}

	if err := db.Create(participant).Error; err != nil {
		t.Fatalf("failed to create participant: %v", err)
	}

	return participant
}

// CreateTitle inserts a title row directly
func CreateTitle(t *testing.T, db *gorm.DB, roomID uuid.UUID, participantID uint, text string) *domain.Title {
	t.Helper()

	title := &domain.Title{
		RoomID:        roomID,
		ParticipantID: participantID,
		Text:          text,
		CreatedAt:     time.Now(),
	}

	if err := db.Create(title).Error; err != nil {
		t.Fatalf("failed to create title: %v", err)
	}

	return title
}

// PostJSON sends a JSON POST request to the test server
func PostJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	return resp
}

// Get sends a GET request to the test server
func Get(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	return resp
}

// Delete sends a DELETE request to the test server
func Delete(t *testing.T, url string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	return resp
}

// CreateRoomViaAPI creates a room through the HTTP API and returns its id
func CreateRoomViaAPI(t *testing.T, ts *TestServer, pages, charactersPerPage int) uuid.UUID {
	t.Helper()

	resp := PostJSON(t, ts.URL("/rooms"), map[string]interface{}{
		"pages":             pages,
		"charactersPerPage": charactersPerPage,
		"timeLimit":         "disabled",
	})
	defer resp.Body.Close()

	AssertStatusCode(t, resp, http.StatusOK)

	var out struct {
		Success bool   `json:"success"`
		RoomID  string `json:"roomId"`
	}
	AssertJSONResponse(t, resp, &out)

	roomID, err := uuid.Parse(out.RoomID)
	if err != nil {
		t.Fatalf("invalid room id %q: %v", out.RoomID, err)
	}

	return roomID
}

// JoinRoomViaAPI joins a room through the HTTP API and returns the participant
func JoinRoomViaAPI(t *testing.T, ts *TestServer, roomID uuid.UUID, playerName string) *domain.Participant {
	t.Helper()

	resp := PostJSON(t, ts.URL(fmt.Sprintf("/rooms/%s/join", roomID)), map[string]string{
		"playerName": playerName,
	})
	defer resp.Body.Close()

	AssertStatusCode(t, resp, http.StatusOK)

	var out struct {
		Success     bool                `json:"success"`
		Participant *domain.Participant `json:"participant"`
	}
	AssertJSONResponse(t, resp, &out)

	if out.Participant == nil {
		t.Fatal("join response missing participant")
	}

	return out.Participant
}
