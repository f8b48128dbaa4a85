package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	addr     string
	store    *session.Store
	sessions *config.Sessions
	jwt      *config.JWT
	ws       *config.WebSocket
}

// New prepares an app listening on addr. An empty addr falls back to the
// APP_PORT env variable.
func New(logger *slog.Logger, addr string) *App {
	if addr == "" {
		addr = ":" + config.Port()
	}

	app := &App{
		logger: logger,
		router: http.NewServeMux(),
		addr:   addr,
		store:  session.NewStore(logger),
	}

	return app
}

func (a *App) setup() error {
	jwt, err := config.NewJWT()
	if err != nil {
		return fmt.Errorf("unable to configure jwt: %w", err)
	}
	a.jwt = jwt

	sessions, err := config.NewSessions()
	if err != nil {
		return err
	}
	a.sessions = sessions

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	a.loadRoutes()
	return nil
}

func (a *App) Handler() http.Handler {
	var h http.Handler = a.router
	if base := strings.TrimSuffix(config.BasePath(), "/"); base != "" {
		h = http.StripPrefix(base, h)
	}
	return middleware.Wrap(
		h,
		middleware.Auth(a.logger, a.jwt),
		middleware.Cors(),
		middleware.Logging(a.logger),
	)
}

// Start serves until ctx is done, then shuts the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.setup(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    a.addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", a.addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return a.store.Run(gCtx, a.sessions.TTL, a.sessions.SweepInterval)
	})
	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(ctx)
	})

	return g.Wait()
}
