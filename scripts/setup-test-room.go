// Dev helper: seeds a room with three players mid-game against a locally
// running server. Run with: go run scripts/setup-test-room.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const apiBase = "http://localhost:8080"

type Participant struct {
	ID         uint   `json:"id"`
	PlayerName string `json:"playerName"`
	IsOwner    bool   `json:"isOwner"`
}

func postJSON(path string, body interface{}, out interface{}) error {
	data, _ := json.Marshal(body)

	resp, err := http.Post(apiBase+path, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s failed (%d): %s", path, resp.StatusCode, string(bodyBytes))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
	}
	return nil
}

func createRoom() (string, error) {
	var result struct {
		RoomID string `json:"roomId"`
	}
	err := postJSON("/rooms", map[string]interface{}{
		"pages":             3,
		"charactersPerPage": 200,
		"timeLimit":         "disabled",
	}, &result)
	return result.RoomID, err
}

func joinRoom(roomID, playerName string) (*Participant, error) {
	var result struct {
		Participant *Participant `json:"participant"`
	}
	err := postJSON("/rooms/"+roomID+"/join", map[string]string{
		"playerName": playerName,
	}, &result)
	return result.Participant, err
}

func main() {
	roomID, err := createRoom()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create room: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created room %s\n", roomID)

	names := []string{"alice", "bob", "carol"}
	participants := make([]*Participant, 0, len(names))
	for _, name := range names {
		p, err := joinRoom(roomID, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "join %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("Joined %s (participant %d, owner=%v)\n", p.PlayerName, p.ID, p.IsOwner)
		participants = append(participants, p)
	}

	if err := postJSON("/rooms/"+roomID+"/start", map[string]interface{}{}, nil); err != nil {
		fmt.Fprintf(os.Stderr, "start room: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Room started, collecting titles")

	titles := []string{"The Last Train", "Midnight Garden", "The Empty House"}
	for i, p := range participants {
		err := postJSON("/rooms/"+roomID+"/titles", map[string]interface{}{
			"participantId": p.ID,
			"title":         titles[i],
		}, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "submit title for %s: %v\n", p.PlayerName, err)
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Printf("Room ready at round 1: %s/rooms/%s/game-state\n", apiBase, roomID)
	fmt.Printf("WebSocket: ws://localhost:8080/ws/rooms/%s?playerName=alice\n", roomID)
}
