package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vancomm/minesweeper-engine/internal/command"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

const playHelp = `commands:
  o x y    open          c x y    chord
  f x y    flag          n        new game
  q        quit`

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "preset",
				Usage: "beginner, intermediate or expert",
				Value: "beginner",
			},
			&cli.StringFlag{
				Name:  "params",
				Usage: "custom board as `WIDTH:HEIGHT:MINES`, overrides --preset",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := setupEngineLog(false, cmd.String("log-file")); err != nil {
				return err
			}

			params, err := playParams(cmd.String("preset"), cmd.String("params"))
			if err != nil {
				return err
			}

			g, err := mines.NewGame(params, nil)
			if err != nil {
				return err
			}

			return play(ctx, os.Stdin, os.Stdout, g)
		},
	}
}

func playParams(preset, custom string) (mines.GameParams, error) {
	if custom != "" {
		p, err := mines.ParseParams(custom)
		if err != nil {
			return mines.GameParams{}, err
		}
		return *p, nil
	}
	p, ok := mines.Preset(preset)
	if !ok {
		return mines.GameParams{}, fmt.Errorf("unknown preset %q", preset)
	}
	return p, nil
}

func printGame(out io.Writer, g *mines.Game) {
	fmt.Fprintf(out, "\n%s  [%s]\n%s", g.GameParams, g.Status(), g.Board.Render(g.Width))
}

// play runs a read-eval-print loop over in until it is exhausted, the user
// quits, or ctx is done.
func play(ctx context.Context, in io.Reader, out io.Writer, g *mines.Game) error {
	fmt.Fprintln(out, playHelp)
	printGame(out, g)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		case "?", "h", "help":
			fmt.Fprintln(out, playHelp)
			continue
		}

		err := command.Execute(g, line)
		if errors.Is(err, command.ErrUnknownCommand) ||
			errors.Is(err, command.ErrArgumentCount) ||
			errors.Is(err, command.ErrBadArgument) ||
			errors.Is(err, command.ErrInvalidPosition) {
			fmt.Fprintln(out, err)
			continue
		}
		if err != nil {
			return err
		}
		printGame(out, g)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
