package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/domain"
	"github.com/jarebon/better-jarebon/internal/repository"
	"gorm.io/gorm"
)

// GameService owns the writing flow: title submissions during title_input and
// page submissions during in_progress, including the phase transitions both
// trigger as side effects.
type GameService struct {
	roomRepo        repository.RoomRepository
	participantRepo repository.ParticipantRepository
	titleRepo       repository.TitleRepository
	pageRepo        repository.PageRepository
}

func NewGameService(
	roomRepo repository.RoomRepository,
	participantRepo repository.ParticipantRepository,
	titleRepo repository.TitleRepository,
	pageRepo repository.PageRepository,
) *GameService {
	return &GameService{
		roomRepo:        roomRepo,
		participantRepo: participantRepo,
		titleRepo:       titleRepo,
		pageRepo:        pageRepo,
	}
}

// SubmitTitle persists a participant's title. When the submission is the last
// one outstanding the room transitions to in_progress at round 1; the second
// return value reports whether that happened.
func (s *GameService) SubmitTitle(ctx context.Context, roomID uuid.UUID, participantID uint, text string) (*domain.Title, bool, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, domain.ErrRoomNotFound
		}
		return nil, false, err
	}

	if room.Status != domain.RoomStatusTitleInput {
		return nil, false, domain.ErrWrongPhase
	}

	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil || participant.RoomID != roomID {
		return nil, false, domain.ErrParticipantNotFound
	}

	if err := domain.ValidateTitleText(text); err != nil {
		return nil, false, err
	}

	// Fast-path duplicate check; the (room_id, participant_id) unique index
	// is what actually prevents the duplicate under concurrency.
	if _, err := s.titleRepo.GetByRoomAndParticipant(ctx, roomID, participantID); err == nil {
		return nil, false, domain.ErrAlreadySubmitted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	title := &domain.Title{
		RoomID:        roomID,
		ParticipantID: participantID,
		Text:          text,
	}

	if err := s.titleRepo.Create(ctx, title); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, domain.ErrAlreadySubmitted
		}
		return nil, false, err
	}

	titleCount, err := s.titleRepo.CountByRoomID(ctx, roomID)
	if err != nil {
		return nil, false, err
	}
	participantCount, err := s.participantRepo.CountByRoomID(ctx, roomID)
	if err != nil {
		return nil, false, err
	}

	if !domain.AllTitlesIn(int(titleCount), int(participantCount)) {
		return title, false, nil
	}

	room.Status = domain.RoomStatusInProgress
	room.CurrentRound = 1
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, false, err
	}

	return title, true, nil
}

// SubmitPage persists a page for the room's current round. The duplicate key
// is (title, round) only: if any page already occupies that slot the
// submission is rejected no matter which participant wrote it.
func (s *GameService) SubmitPage(ctx context.Context, roomID uuid.UUID, participantID uint, titleID uint, content string) (*domain.Page, domain.RoundOutcome, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.RoundOutcomeNone, domain.ErrRoomNotFound
		}
		return nil, domain.RoundOutcomeNone, err
	}

	if room.Status != domain.RoomStatusInProgress {
		return nil, domain.RoundOutcomeNone, domain.ErrWrongPhase
	}

	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil || participant.RoomID != roomID {
		return nil, domain.RoundOutcomeNone, domain.ErrParticipantNotFound
	}

	title, err := s.titleRepo.GetByID(ctx, titleID)
	if err != nil || title.RoomID != roomID {
		return nil, domain.RoundOutcomeNone, domain.ErrTitleNotFound
	}

	if err := domain.ValidatePageContent(content, room.CharactersPerPage); err != nil {
		return nil, domain.RoundOutcomeNone, err
	}

	if _, err := s.pageRepo.GetByTitleAndRound(ctx, titleID, room.CurrentRound); err == nil {
		return nil, domain.RoundOutcomeNone, domain.ErrAlreadySubmitted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.RoundOutcomeNone, err
	}

	page := &domain.Page{
		TitleID:       titleID,
		Round:         room.CurrentRound,
		ParticipantID: participantID,
		Content:       content,
		SubmittedAt:   time.Now(),
	}

	if err := s.pageRepo.Create(ctx, page); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.RoundOutcomeNone, domain.ErrAlreadySubmitted
		}
		return nil, domain.RoundOutcomeNone, err
	}

	titles, err := s.titleRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		return nil, domain.RoundOutcomeNone, err
	}
	roundPages, err := s.pageRepo.GetByRoomAndRound(ctx, roomID, room.CurrentRound)
	if err != nil {
		return nil, domain.RoundOutcomeNone, err
	}

	outcome := domain.NextAfterPage(room, titles, roundPages)
	switch outcome {
	case domain.RoundOutcomeAdvance:
		room.CurrentRound++
		if err := s.roomRepo.Update(ctx, room); err != nil {
			return nil, domain.RoundOutcomeNone, err
		}
	case domain.RoundOutcomeComplete:
		now := time.Now()
		room.Status = domain.RoomStatusCompleted
		room.CompletedAt = &now
		if err := s.roomRepo.Update(ctx, room); err != nil {
			return nil, domain.RoundOutcomeNone, err
		}
	}

	return page, outcome, nil
}

// GameState is the full snapshot polled by clients. Assignments are computed
// on every call, never persisted.
type GameState struct {
	Room         *domain.Room          `json:"room"`
	Participants []*domain.Participant `json:"participants"`
	Titles       []*domain.Title       `json:"titles"`
	Pages        []*domain.Page        `json:"pages"`
	Assignments  map[uint]uint         `json:"assignments"`
}

func (s *GameService) GetGameState(ctx context.Context, roomID uuid.UUID) (*GameState, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}

	participants, err := s.participantRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	titles, err := s.titleRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	pages, err := s.pageRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return &GameState{
		Room:         room,
		Participants: participants,
		Titles:       titles,
		Pages:        pages,
		Assignments:  domain.AssignmentsFor(room, participants, titles),
	}, nil
}
