package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jarebon/better-jarebon/internal/api/handlers"
	"github.com/jarebon/better-jarebon/internal/api/middleware"
	"github.com/jarebon/better-jarebon/internal/service"
	"github.com/jarebon/better-jarebon/internal/websocket"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	roomHandler := handlers.NewRoomHandler(services.Room, hub)
	gameHandler := handlers.NewGameHandler(services.Game, hub)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Room)

	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", roomHandler.Create)

		r.Route("/{roomID}", func(r chi.Router) {
			r.Get("/", roomHandler.Get)
			r.Delete("/", roomHandler.Delete)
			r.Post("/join", roomHandler.Join)
			r.Post("/start", roomHandler.Start)
			r.Post("/titles", gameHandler.SubmitTitle)
			r.Post("/pages", gameHandler.SubmitPage)
			r.Get("/game-state", gameHandler.GetGameState)
		})
	})

	r.Get("/ws/rooms/{roomID}", wsHandler.Handle)

	return r
}
