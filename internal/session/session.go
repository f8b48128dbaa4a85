// Package session keeps the live games of one server process in memory.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var ErrSessionNotFound = errors.New("game session not found")

// Session is one game plus the lock that serializes its events.
type Session struct {
	ID        string
	StartedAt time.Time

	mu       sync.Mutex
	game     *mines.Game
	lastSeen atomic.Int64
}

// Do runs f with exclusive access to the game. f must not keep g.
func (s *Session) Do(f func(g *mines.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch(time.Now())
	return f(s.game)
}

func (s *Session) touch(t time.Time) {
	s.lastSeen.Store(t.UnixNano())
}

func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

type Store struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new game in the Ready phase.
func (s *Store) Create(params mines.GameParams) (*Session, error) {
	game, err := mines.NewGame(params, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create game: %w", err)
	}

	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		StartedAt: now,
		game:      game,
	}
	session.touch(now)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Debug("session created",
		slog.String("id", session.ID), slog.String("params", params.String()),
	)
	return session, nil
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts every session idle since before now-ttl and reports how many
// were removed.
func (s *Store) Sweep(now time.Time, ttl time.Duration) (evicted int) {
	deadline := now.Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.LastSeen().Before(deadline) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return
}

// Run sweeps idle sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, ttl, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if n := s.Sweep(now, ttl); n > 0 {
				s.logger.Info("evicted idle sessions",
					slog.Int("count", n), slog.Int("remaining", s.Len()),
				)
			}
		}
	}
}
