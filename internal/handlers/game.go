package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-engine/internal/command"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

const maxBatchBytes = 64 << 10

var (
	ErrNoToken       = errors.New("session token required")
	ErrForeignToken  = errors.New("token does not belong to this game session")
	ErrInvalidCell   = errors.New("invalid cell position")
	ErrBatchTooLarge = errors.New("batch too large")
)

type GameHandler struct {
	logger *slog.Logger
	store  *session.Store
	jwt    *config.JWT
	ws     *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	store *session.Store,
	jwt *config.JWT,
	ws *config.WebSocket,
) *GameHandler {
	handler := &GameHandler{
		logger: logger,
		store:  store,
		jwt:    jwt,
		ws:     ws,
	}

	return handler
}

// authorize resolves the session named in the path, checking that the
// request carries a token issued for it.
func (g GameHandler) authorize(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")

	claims, ok := middleware.SessionClaims(r.Context())
	if !ok {
		sendError(w, g.logger, http.StatusUnauthorized, ErrNoToken)
		return nil, false
	}
	if claims.GameSessionID != id {
		sendError(w, g.logger, http.StatusForbidden, ErrForeignToken)
		return nil, false
	}

	s, err := g.store.Get(id)
	if errors.Is(err, session.ErrSessionNotFound) {
		sendError(w, g.logger, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session", slog.Any("error", err))
		return nil, false
	}
	return s, true
}

// respond runs f on the session's game and sends the resulting snapshot.
// Errors from f are the client's fault.
func (g GameHandler) respond(
	w http.ResponseWriter, s *session.Session, f func(*mines.Game) error,
) {
	var dto *GameSessionDTO
	err := s.Do(func(game *mines.Game) error {
		if err := f(game); err != nil {
			return err
		}
		dto = NewGameSessionDTO(s, game)
		return nil
	})
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}
	sendJSONOrLog(w, g.logger, dto)
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	params, err := ParseGameParams(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s, err := g.store.Create(params)
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	token, err := g.jwt.SignSession(s.ID)
	if err != nil {
		g.store.Delete(s.ID)
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create a jwt token", slog.Any("error", err))
		return
	}

	var dto *GameSessionDTO
	err = s.Do(func(game *mines.Game) error {
		dto = NewGameSessionDTO(s, game)
		return nil
	})
	if err != nil {
		g.store.Delete(s.ID)
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to snapshot new game", slog.Any("error", err))
		return
	}
	dto.Token = token

	sendJSONStatus(w, g.logger, http.StatusCreated, dto)
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.authorize(w, r)
	if !ok {
		return
	}
	g.respond(w, s, func(*mines.Game) error { return nil })
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	move, err := mines.ParseMove(dto.Move)
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s, ok := g.authorize(w, r)
	if !ok {
		return
	}

	g.respond(w, s, func(game *mines.Game) error {
		if !game.ValidatePoint(dto.X, dto.Y) {
			return fmt.Errorf("%w: (%d, %d)", ErrInvalidCell, dto.X, dto.Y)
		}
		return game.Apply(move, game.Index(dto.X, dto.Y), dto.Middle)
	})
}

func (g GameHandler) Resize(w http.ResponseWriter, r *http.Request) {
	params, err := ParseGameParams(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	s, ok := g.authorize(w, r)
	if !ok {
		return
	}

	g.respond(w, s, func(game *mines.Game) error {
		return game.Resize(params)
	})
}

// Batch runs a newline separated list of commands. Commands before a failing
// line stay applied.
func (g GameHandler) Batch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.authorize(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBatchBytes))
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		sendError(w, g.logger, http.StatusRequestEntityTooLarge, ErrBatchTooLarge)
		return
	}
	if err != nil {
		sendError(w, g.logger, http.StatusBadRequest, err)
		return
	}

	g.respond(w, s, func(game *mines.Game) error {
		_, err := command.ExecuteAll(game, string(body))
		return err
	})
}
