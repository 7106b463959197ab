package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/domain"
	"gorm.io/gorm"
)

type titleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) *titleRepository {
	return &titleRepository{db: db}
}

func (r *titleRepository) Create(ctx context.Context, title *domain.Title) error {
	return r.db.WithContext(ctx).Create(title).Error
}

func (r *titleRepository) GetByID(ctx context.Context, id uint) (*domain.Title, error) {
	var title domain.Title
	err := r.db.WithContext(ctx).First(&title, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &title, nil
}

func (r *titleRepository) GetByRoomAndParticipant(ctx context.Context, roomID uuid.UUID, participantID uint) (*domain.Title, error) {
	var title domain.Title
	err := r.db.WithContext(ctx).
		First(&title, "room_id = ? AND participant_id = ?", roomID, participantID).Error
	if err != nil {
		return nil, err
	}
	return &title, nil
}

func (r *titleRepository) GetByRoomID(ctx context.Context, roomID uuid.UUID) ([]*domain.Title, error) {
	var titles []*domain.Title
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC, id ASC").
		Find(&titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

func (r *titleRepository) CountByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Title{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}
