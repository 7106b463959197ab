package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	GetByID(ctx context.Context, id uint) (*domain.Participant, error)
	GetByRoomAndName(ctx context.Context, roomID uuid.UUID, playerName string) (*domain.Participant, error)
	// GetByRoomID returns participants ordered by join time; this order
	// defines the rotation indices.
	GetByRoomID(ctx context.Context, roomID uuid.UUID) ([]*domain.Participant, error)
	CountByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error)
}

type TitleRepository interface {
	Create(ctx context.Context, title *domain.Title) error
	GetByID(ctx context.Context, id uint) (*domain.Title, error)
	GetByRoomAndParticipant(ctx context.Context, roomID uuid.UUID, participantID uint) (*domain.Title, error)
	// GetByRoomID returns titles ordered by creation time.
	GetByRoomID(ctx context.Context, roomID uuid.UUID) ([]*domain.Title, error)
	CountByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error)
}

type PageRepository interface {
	Create(ctx context.Context, page *domain.Page) error
	GetByTitleAndRound(ctx context.Context, titleID uint, round int) (*domain.Page, error)
	GetByRoomID(ctx context.Context, roomID uuid.UUID) ([]*domain.Page, error)
	GetByRoomAndRound(ctx context.Context, roomID uuid.UUID, round int) ([]*domain.Page, error)
}

type Repositories struct {
	Room        RoomRepository
	Participant ParticipantRepository
	Title       TitleRepository
	Page        PageRepository
}
