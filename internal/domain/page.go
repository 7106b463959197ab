package domain

import "time"

// Page is one round's contribution to one title. The (title_id, round)
// unique index is the authoritative duplicate guard: a second submission for
// the same slot is rejected regardless of who submits it.
type Page struct {
	ID            uint      `json:"id" gorm:"primary_key"`
	TitleID       uint      `json:"titleId" gorm:"not null;uniqueIndex:idx_pages_title_round"`
	Round         int       `json:"round" gorm:"not null;uniqueIndex:idx_pages_title_round"`
	ParticipantID uint      `json:"participantId" gorm:"not null"`
	Content       string    `json:"content" gorm:"not null"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
