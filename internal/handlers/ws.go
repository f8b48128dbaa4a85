package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-engine/internal/command"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// ConnectWS upgrades to a websocket. The current snapshot is sent on
// connect; after that each text frame is a batch of commands and is answered
// with the new snapshot, or with an error object if a command fails.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.authorize(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", slog.Any("error", err))
		return
	}
	defer c.Close()
	c.SetReadLimit(maxBatchBytes)

	log := g.logger.With(slog.String("session", s.ID))

	send := func(v any) bool {
		c.SetWriteDeadline(time.Now().Add(g.ws.WriteTimeout))
		if err := c.WriteJSON(v); err != nil {
			log.Warn("unable to write to websocket", slog.Any("error", err))
			return false
		}
		return true
	}

	snapshot := func(text string) any {
		var dto *GameSessionDTO
		err := s.Do(func(game *mines.Game) error {
			if _, err := command.ExecuteAll(game, text); err != nil {
				return err
			}
			dto = NewGameSessionDTO(s, game)
			return nil
		})
		if err != nil {
			log.Debug("command failed", slog.Any("error", err))
			return wrapError(err)
		}
		return dto
	}

	if !send(snapshot("")) {
		return
	}

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("unable to read from websocket", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(
				websocket.CloseUnsupportedData, "text frames only",
			))
			return
		}
		text := strings.TrimSpace(string(message))
		log.Debug("> " + text)
		if !send(snapshot(text)) {
			return
		}
	}
}
