package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/domain"
	"gorm.io/gorm"
)

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *participantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) GetByID(ctx context.Context, id uint) (*domain.Participant, error) {
	var participant domain.Participant
	err := r.db.WithContext(ctx).First(&participant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) GetByRoomAndName(ctx context.Context, roomID uuid.UUID, playerName string) (*domain.Participant, error) {
	var participant domain.Participant
	err := r.db.WithContext(ctx).
		First(&participant, "room_id = ? AND player_name = ?", roomID, playerName).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) GetByRoomID(ctx context.Context, roomID uuid.UUID) ([]*domain.Participant, error) {
	var participants []*domain.Participant
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("joined_at ASC, id ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) CountByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}
