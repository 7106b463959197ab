package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/domain"
	"github.com/jarebon/better-jarebon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStartedRoom creates a room, joins n players, and starts title input.
func setupStartedRoom(t *testing.T, ts *testutil.TestServer, n int) (uuid.UUID, []*domain.Participant) {
	t.Helper()

	roomID := testutil.CreateRoomViaAPI(t, ts, 2, 200)

	participants := make([]*domain.Participant, 0, n)
	for i := 0; i < n; i++ {
		participants = append(participants, testutil.JoinRoomViaAPI(t, ts, roomID, fmt.Sprintf("player%d", i+1)))
	}

	resp := testutil.PostJSON(t, ts.URL(fmt.Sprintf("/rooms/%s/start", roomID)), map[string]interface{}{})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	return roomID, participants
}

func submitTitle(t *testing.T, ts *testutil.TestServer, roomID uuid.UUID, participantID uint, text string) (bool, *domain.Title) {
	t.Helper()

	resp := testutil.PostJSON(t, ts.URL(fmt.Sprintf("/rooms/%s/titles", roomID)), map[string]interface{}{
		"participantId": participantID,
		"title":         text,
	})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var out struct {
		Success     bool          `json:"success"`
		Title       *domain.Title `json:"title"`
		GameStarted bool          `json:"gameStarted"`
	}
	testutil.AssertJSONResponse(t, resp, &out)
	require.True(t, out.Success)

	return out.GameStarted, out.Title
}

func fetchGameState(t *testing.T, ts *testutil.TestServer, roomID uuid.UUID) (room *domain.Room, titles []*domain.Title, pages []*domain.Page, assignments map[uint]uint) {
	t.Helper()

	resp := testutil.Get(t, ts.URL(fmt.Sprintf("/rooms/%s/game-state", roomID)))
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var out struct {
		Success     bool            `json:"success"`
		Room        *domain.Room    `json:"room"`
		Titles      []*domain.Title `json:"titles"`
		Pages       []*domain.Page  `json:"pages"`
		Assignments map[uint]uint   `json:"assignments"`
	}
	testutil.AssertJSONResponse(t, resp, &out)
	require.True(t, out.Success)

	return out.Room, out.Titles, out.Pages, out.Assignments
}

func TestSubmitTitleEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	roomID, participants := setupStartedRoom(t, ts, 2)

	started, title := submitTitle(t, ts, roomID, participants[0].ID, "The Last Train")
	assert.False(t, started)
	assert.Equal(t, "The Last Train", title.Text)

	t.Run("duplicate title conflicts", func(t *testing.T) {
		resp := testutil.PostJSON(t, ts.URL(fmt.Sprintf("/rooms/%s/titles", roomID)), map[string]interface{}{
			"participantId": participants[0].ID,
			"title":         "Another One",
		})
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusConflict, "already submitted")
	})

	t.Run("last title starts the game", func(t *testing.T) {
		started, _ := submitTitle(t, ts, roomID, participants[1].ID, "Midnight Garden")
		assert.True(t, started)

		room, _, _, assignments := fetchGameState(t, ts, roomID)
		assert.Equal(t, domain.RoomStatusInProgress, room.Status)
		assert.Equal(t, 1, room.CurrentRound)
		assert.Len(t, assignments, 2)
	})
}

func TestSubmitPageEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	roomID, participants := setupStartedRoom(t, ts, 2)
	for i, p := range participants {
		submitTitle(t, ts, roomID, p.ID, fmt.Sprintf("Story %d", i+1))
	}

	submitPage := func(participantID, titleID uint, content string) *http.Response {
		return testutil.PostJSON(t, ts.URL(fmt.Sprintf("/rooms/%s/pages", roomID)), map[string]interface{}{
			"participantId": participantID,
			"titleId":       titleID,
			"content":       content,
		})
	}

	_, _, _, assignments := fetchGameState(t, ts, roomID)
	require.Len(t, assignments, 2)

	t.Run("first page of the round", func(t *testing.T) {
		resp := submitPage(participants[0].ID, assignments[participants[0].ID], "Once upon a time.")
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var out struct {
			Success       bool `json:"success"`
			RoundAdvanced bool `json:"roundAdvanced"`
			GameCompleted bool `json:"gameCompleted"`
		}
		testutil.AssertJSONResponse(t, resp, &out)
		assert.True(t, out.Success)
		assert.False(t, out.RoundAdvanced)
		assert.False(t, out.GameCompleted)
	})

	t.Run("occupied slot conflicts", func(t *testing.T) {
		resp := submitPage(participants[1].ID, assignments[participants[0].ID], "A rival opening.")
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusConflict, "already submitted")
	})

	t.Run("last page of the round advances", func(t *testing.T) {
		resp := submitPage(participants[1].ID, assignments[participants[1].ID], "Meanwhile, elsewhere.")
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var out struct {
			Success       bool `json:"success"`
			RoundAdvanced bool `json:"roundAdvanced"`
			GameCompleted bool `json:"gameCompleted"`
		}
		testutil.AssertJSONResponse(t, resp, &out)
		assert.True(t, out.RoundAdvanced)
		assert.False(t, out.GameCompleted)

		room, _, _, round2 := fetchGameState(t, ts, roomID)
		assert.Equal(t, 2, room.CurrentRound)
		// Round two swaps the two titles.
		assert.Equal(t, assignments[participants[0].ID], round2[participants[1].ID])
		assert.Equal(t, assignments[participants[1].ID], round2[participants[0].ID])
	})

	t.Run("final round completes the game", func(t *testing.T) {
		_, _, _, round2 := fetchGameState(t, ts, roomID)

		resp := submitPage(participants[0].ID, round2[participants[0].ID], "The plot thickens.")
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		resp2 := submitPage(participants[1].ID, round2[participants[1].ID], "And they all went home.")
		defer resp2.Body.Close()

		var out struct {
			Success       bool `json:"success"`
			RoundAdvanced bool `json:"roundAdvanced"`
			GameCompleted bool `json:"gameCompleted"`
		}
		testutil.AssertJSONResponse(t, resp2, &out)
		assert.True(t, out.GameCompleted)
		assert.False(t, out.RoundAdvanced)

		room, _, pages, _ := fetchGameState(t, ts, roomID)
		assert.Equal(t, domain.RoomStatusCompleted, room.Status)
		assert.NotNil(t, room.CompletedAt)
		assert.Len(t, pages, 4)
	})
}

func TestGameStateEndpointUnknownRoom(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.Get(t, ts.URL(fmt.Sprintf("/rooms/%s/game-state", uuid.New())))
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "room not found")
}

func TestHealthEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.Get(t, ts.URL("/health"))
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)
}
