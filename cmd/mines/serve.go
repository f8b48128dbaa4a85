package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vancomm/minesweeper-engine/internal/app"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve games over HTTP and websockets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "listen on `ADDR` (default :$APP_PORT)",
				Sources: cli.EnvVars("APP_ADDR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			development := cmd.Bool("dev")
			logger := newLogger(os.Stderr, development)

			if err := setupEngineLog(development, cmd.String("log-file")); err != nil {
				return err
			}

			a := app.New(logger, cmd.String("addr"))
			if err := a.Start(ctx); err != nil {
				logger.Error("server stopped", slog.Any("error", err))
				return err
			}
			logger.Info("server stopped")
			return nil
		},
	}
}
