package domain

import (
	"time"

	"github.com/google/uuid"
)

type TimeLimitMode string

const (
	TimeLimitDisabled TimeLimitMode = "disabled"
	TimeLimitDisplay  TimeLimitMode = "display"
	TimeLimitEnabled  TimeLimitMode = "enabled"
)

type RoomStatus string

const (
	RoomStatusWaiting    RoomStatus = "waiting"
	RoomStatusTitleInput RoomStatus = "title_input"
	RoomStatusInProgress RoomStatus = "in_progress"
	RoomStatusCompleted  RoomStatus = "completed"
)

// Room configuration bounds.
const (
	MinPages             = 1
	MaxPages             = 20
	MinCharactersPerPage = 50
	MaxCharactersPerPage = 500
	MinTimeLimitSeconds  = 10
	MaxTimeLimitSeconds  = 600
)

type Room struct {
	ID                uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Pages             int           `json:"pages" gorm:"not null"`
	CharactersPerPage int           `json:"charactersPerPage" gorm:"not null"`
	TimeLimit         TimeLimitMode `json:"timeLimit" gorm:"not null;default:'disabled'"`
	TimeLimitSeconds  *int          `json:"timeLimitSeconds"`
	Status            RoomStatus    `json:"status" gorm:"not null;default:'waiting'"`
	CurrentRound      int           `json:"currentRound" gorm:"not null;default:0"`
	CreatedAt         time.Time     `json:"createdAt"`
	StartedAt         *time.Time    `json:"startedAt"`
	CompletedAt       *time.Time    `json:"completedAt"`

	// Relations
	Participants []Participant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Titles       []Title       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
