package service

import (
	"github.com/jarebon/better-jarebon/internal/config"
	"github.com/jarebon/better-jarebon/internal/repository"
)

type Services struct {
	Room *RoomService
	Game *GameService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Room: NewRoomService(repos.Room, repos.Participant, cfg),
		Game: NewGameService(repos.Room, repos.Participant, repos.Title, repos.Page),
	}
}
