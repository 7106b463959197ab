package domain

import (
	"time"

	"github.com/google/uuid"
)

// Title is a story premise authored by one participant. Each participant
// submits exactly one title per room; the set freezes once the room leaves
// title_input.
type Title struct {
	ID            uint      `json:"id" gorm:"primary_key"`
	RoomID        uuid.UUID `json:"roomId" gorm:"type:uuid;not null;uniqueIndex:idx_titles_room_participant"`
	ParticipantID uint      `json:"participantId" gorm:"not null;uniqueIndex:idx_titles_room_participant"`
	Text          string    `json:"title" gorm:"column:title;not null"`
	CreatedAt     time.Time `json:"createdAt"`

	// Relations
	Participant *Participant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PageList    []Page       `json:"-" gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE"`
}
