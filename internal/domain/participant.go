package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is one named player within a room. The first joiner becomes
// the owner; joining again with the same name returns the existing row.
type Participant struct {
	ID         uint      `json:"id" gorm:"primary_key"`
	RoomID     uuid.UUID `json:"roomId" gorm:"type:uuid;not null;uniqueIndex:idx_participants_room_name"`
	PlayerName string    `json:"playerName" gorm:"not null;uniqueIndex:idx_participants_room_name"`
	IsOwner    bool      `json:"isOwner" gorm:"not null;default:false"`
	JoinedAt   time.Time `json:"joinedAt" gorm:"not null"`
}
