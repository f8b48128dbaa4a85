// Package command implements the line protocol shared by the websocket,
// batch endpoint and terminal client. Each line is one input event:
//
//	o x y     open (the first open starts the game)
//	c x y     chord a revealed number
//	f x y     toggle a flag
//	d x y b   button b pressed over a cell (b = 1 is the middle button)
//	u x y b   button b released
//	n         new game with the same params
//	g         no-op, used to fetch the current state
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrArgumentCount   = errors.New("invalid number of arguments")
	ErrBadArgument     = errors.New("argument must be an int")
	ErrInvalidPosition = errors.New("invalid square coordinates")
)

// MiddleButton is the button number that previews a chord on press.
const MiddleButton = 1

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"n": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"d": 3,
	"u": 3,
}

func parseInts(args []string) ([]int, error) {
	res := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d is %q", ErrBadArgument, i+1, s)
		}
		res[i] = n
	}
	return res, nil
}

// Execute applies a single command line to g. Events the current phase does
// not accept are silently ignored, like any other illegal move.
func Execute(g *mines.Game, line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf(
			"%w: %q takes %d, got %d", ErrArgumentCount, parts[0], nargs, len(parts)-1,
		)
	}

	args, err := parseInts(parts[1:])
	if err != nil {
		return err
	}

	pos := -1
	if nargs >= 2 {
		x, y := args[0], args[1]
		if !g.ValidatePoint(x, y) {
			return fmt.Errorf("%w: (%d, %d)", ErrInvalidPosition, x, y)
		}
		pos = g.Index(x, y)
	}

	switch parts[0] {
	case "g":
		return nil
	case "n":
		return g.Resize(g.GameParams)
	case "o":
		return g.Apply(mines.Open, pos, false)
	case "c":
		return g.Apply(mines.Chord, pos, false)
	case "f":
		return g.Apply(mines.Flag, pos, false)
	case "d":
		return g.Apply(mines.Press, pos, args[2] == MiddleButton)
	case "u":
		return g.Apply(mines.Release, pos, args[2] == MiddleButton)
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
}

// ExecuteAll runs every non-blank line of text in order and stops at the
// first error. Moves after the game is over are no-ops, but "n" still starts
// a new one.
func ExecuteAll(g *mines.Game, text string) (executed int, err error) {
	for i, line := range Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := Execute(g, line); err != nil {
			return executed, fmt.Errorf("line %d: %w", i+1, err)
		}
		executed++
	}
	return executed, nil
}
