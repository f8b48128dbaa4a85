package app

import (
	"github.com/vancomm/minesweeper-engine/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.store, a.jwt, a.ws)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("POST /game/{id}/resize", game.Resize)
	a.router.HandleFunc("POST /game/{id}/batch", game.Batch)
	a.router.HandleFunc("GET /game/{id}/connect", game.ConnectWS)
}
