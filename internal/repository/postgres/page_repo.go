package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jarebon/better-jarebon/internal/domain"
	"gorm.io/gorm"
)

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) *pageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(ctx context.Context, page *domain.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *pageRepository) GetByTitleAndRound(ctx context.Context, titleID uint, round int) (*domain.Page, error) {
	var page domain.Page
	err := r.db.WithContext(ctx).
		First(&page, "title_id = ? AND round = ?", titleID, round).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) GetByRoomID(ctx context.Context, roomID uuid.UUID) ([]*domain.Page, error) {
	var pages []*domain.Page
	err := r.db.WithContext(ctx).
		Joins("JOIN titles ON titles.id = pages.title_id").
		Where("titles.room_id = ?", roomID).
		Order("pages.round ASC, pages.id ASC").
		Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepository) GetByRoomAndRound(ctx context.Context, roomID uuid.UUID, round int) ([]*domain.Page, error) {
	var pages []*domain.Page
	err := r.db.WithContext(ctx).
		Joins("JOIN titles ON titles.id = pages.title_id").
		Where("titles.room_id = ? AND pages.round = ?", roomID, round).
		Order("pages.id ASC").
		Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}
