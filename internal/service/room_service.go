package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/config"
	"github.com/jarebon/better-jarebon/internal/domain"
	"github.com/jarebon/better-jarebon/internal/repository"
	"gorm.io/gorm"
)

type RoomService struct {
	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
	cfg             *config.Config
}

func NewRoomService(roomRepo repository.RoomRepository, participantRepo repository.ParticipantRepository, cfg *config.Config) *RoomService {
	return &RoomService{
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
		cfg:             cfg,
	}
}

type CreateRoomInput struct {
	Pages             int
	CharactersPerPage int
	TimeLimit         domain.TimeLimitMode
	TimeLimitSeconds  *int
}

func (s *RoomService) CreateRoom(ctx context.Context, input CreateRoomInput) (*domain.Room, error) {
	if err := domain.ValidateRoomConfig(input.Pages, input.CharactersPerPage, input.TimeLimit, input.TimeLimitSeconds); err != nil {
		return nil, err
	}

	seconds := input.TimeLimitSeconds
	if input.TimeLimit == domain.TimeLimitDisabled {
		seconds = nil
	}

	room := &domain.Room{
		ID:                uuid.New(),
		Pages:             input.Pages,
		CharactersPerPage: input.CharactersPerPage,
		TimeLimit:         input.TimeLimit,
		TimeLimitSeconds:  seconds,
		Status:            domain.RoomStatusWaiting,
		CurrentRound:      0,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, []*domain.Participant, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrRoomNotFound
		}
		return nil, nil, err
	}

	participants, err := s.participantRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}

	return room, participants, nil
}

// JoinRoom is idempotent per (room, name): joining with a name already in the
// room returns the existing participant instead of creating a duplicate.
func (s *RoomService) JoinRoom(ctx context.Context, roomID uuid.UUID, playerName string) (*domain.Participant, bool, error) {
	if err := domain.ValidatePlayerName(playerName); err != nil {
		return nil, false, err
	}

	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, domain.ErrRoomNotFound
		}
		return nil, false, err
	}

	existing, err := s.participantRepo.GetByRoomAndName(ctx, roomID, playerName)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	count, err := s.participantRepo.CountByRoomID(ctx, roomID)
	if err != nil {
		return nil, false, err
	}

	participant := &domain.Participant{
		RoomID:     roomID,
		PlayerName: playerName,
		IsOwner:    count == 0,
		JoinedAt:   time.Now(),
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		// Lost a race against a concurrent join with the same name; the
		// unique index on (room_id, player_name) is authoritative, so
		// fall back to the row that won.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, lookupErr := s.participantRepo.GetByRoomAndName(ctx, roomID, playerName)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			return existing, true, nil
		}
		return nil, false, err
	}

	return participant, false, nil
}

// StartRoom moves the room from waiting to title_input. requestedBy is the
// participant claiming to issue the start; it is only consulted when the
// owner-only policy is enabled.
func (s *RoomService) StartRoom(ctx context.Context, roomID uuid.UUID, requestedBy *uint) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}

	if room.Status != domain.RoomStatusWaiting {
		return nil, domain.ErrWrongPhase
	}

	if s.cfg.OwnerOnlyStart {
		if requestedBy == nil {
			return nil, domain.ErrNotOwner
		}
		participant, err := s.participantRepo.GetByID(ctx, *requestedBy)
		if err != nil || participant.RoomID != roomID {
			return nil, domain.ErrParticipantNotFound
		}
		if !participant.IsOwner {
			return nil, domain.ErrNotOwner
		}
	}

	now := time.Now()
	room.Status = domain.RoomStatusTitleInput
	room.StartedAt = &now

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRoomNotFound
		}
		return err
	}
	return s.roomRepo.Delete(ctx, roomID)
}
