package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	// A missing .env is fine; the environment may be set by other means.
	_ = godotenv.Load()

	cmd := newRootCommand()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "mines",
		Usage: "minesweeper rules engine",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dev",
				Usage: "human readable debug logging (default from DEVELOPMENT)",
				Value: config.Development(),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "rotate engine traces into `FILE`",
				Sources: cli.EnvVars("LOG_FILE"),
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			playCommand(),
		},
	}
}
