package websocket_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	gorillaWS "github.com/gorilla/websocket"
	"github.com/jarebon/better-jarebon/internal/domain"
	"github.com/jarebon/better-jarebon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messageTimeout = 3 * time.Second

func TestSubscriberGetsInitialSnapshot(t *testing.T) {
	ts := testutil.NewTestServer(t)

	roomID := testutil.CreateRoomViaAPI(t, ts, 3, 200)
	testutil.JoinRoomViaAPI(t, ts, roomID, "alice")

	client := testutil.NewWSClient(t, ts.WebSocketURL(roomID.String(), "alice"))

	update := client.ExpectParticipantsUpdate(messageTimeout)
	require.Len(t, update.Participants, 1)
	assert.Equal(t, "alice", update.Participants[0].PlayerName)
}

func TestJoinBroadcastsParticipants(t *testing.T) {
	ts := testutil.NewTestServer(t)

	roomID := testutil.CreateRoomViaAPI(t, ts, 3, 200)
	testutil.JoinRoomViaAPI(t, ts, roomID, "alice")

	client := testutil.NewWSClient(t, ts.WebSocketURL(roomID.String(), "alice"))
	client.ExpectParticipantsUpdate(messageTimeout) // initial snapshot

	testutil.JoinRoomViaAPI(t, ts, roomID, "bob")

	update := client.ExpectParticipantsUpdate(messageTimeout)
	require.Len(t, update.Participants, 2)
	assert.Equal(t, "alice", update.Participants[0].PlayerName)
	assert.Equal(t, "bob", update.Participants[1].PlayerName)
}

func TestJoinBroadcastReachesEverySubscriber(t *testing.T) {
	ts := testutil.NewTestServer(t)

	roomID := testutil.CreateRoomViaAPI(t, ts, 3, 200)
	testutil.JoinRoomViaAPI(t, ts, roomID, "alice")
	testutil.JoinRoomViaAPI(t, ts, roomID, "bob")

	alice := testutil.NewWSClient(t, ts.WebSocketURL(roomID.String(), "alice"))
	bob := testutil.NewWSClient(t, ts.WebSocketURL(roomID.String(), "bob"))
	alice.ExpectParticipantsUpdate(messageTimeout)
	bob.ExpectParticipantsUpdate(messageTimeout)

	testutil.JoinRoomViaAPI(t, ts, roomID, "carol")

	for _, client := range []*testutil.WSClient{alice, bob} {
		update := client.ExpectParticipantsUpdate(messageTimeout)
		assert.Len(t, update.Participants, 3)
	}
}

func TestStartBroadcastsRoomState(t *testing.T) {
	ts := testutil.NewTestServer(t)

	roomID := testutil.CreateRoomViaAPI(t, ts, 3, 200)
	testutil.JoinRoomViaAPI(t, ts, roomID, "alice")

	client := testutil.NewWSClient(t, ts.WebSocketURL(roomID.String(), "alice"))
	client.ExpectParticipantsUpdate(messageTimeout)

	resp := testutil.PostJSON(t, ts.URL("/rooms/"+roomID.String()+"/start"), map[string]interface{}{})
	resp.Body.Close()

	update := client.ExpectRoomStateUpdate(messageTimeout)
	assert.Equal(t, domain.RoomStatusTitleInput, update.Room.Status)
	assert.Len(t, update.Participants, 1)
}

func TestBroadcastIsScopedToRoom(t *testing.T) {
	ts := testutil.NewTestServer(t)

	roomA := testutil.CreateRoomViaAPI(t, ts, 3, 200)
	roomB := testutil.CreateRoomViaAPI(t, ts, 3, 200)
	testutil.JoinRoomViaAPI(t, ts, roomA, "alice")
	testutil.JoinRoomViaAPI(t, ts, roomB, "bob")

	clientB := testutil.NewWSClient(t, ts.WebSocketURL(roomB.String(), "bob"))
	clientB.ExpectParticipantsUpdate(messageTimeout)

	// Activity in room A must not reach room B's subscriber.
	testutil.JoinRoomViaAPI(t, ts, roomA, "carol")

	clientB.ExpectNoMessage(500 * time.Millisecond)
}

func TestConnectToUnknownRoomFails(t *testing.T) {
	ts := testutil.NewTestServer(t)

	url := ts.WebSocketURL(uuid.New().String(), "ghost")

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, resp, err := dialer.Dial(url, nil)
	if conn != nil {
		conn.Close()
	}
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 404, resp.StatusCode)
}
