package postgres

import (
	"github.com/jarebon/better-jarebon/internal/domain"
	"github.com/jarebon/better-jarebon/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Surfaces unique-index violations as gorm.ErrDuplicatedKey so the
		// services can map them to AlreadySubmitted.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema, including the unique indexes that
// guard duplicate joins, titles, and pages at the write layer.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Room{},
		&domain.Participant{},
		&domain.Title{},
		&domain.Page{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Room:        NewRoomRepository(db),
		Participant: NewParticipantRepository(db),
		Title:       NewTitleRepository(db),
		Page:        NewPageRepository(db),
	}
}
