package mines

import (
	"fmt"
	"math/rand/v2"
)

type Phase int8

const (
	Ready Phase = iota
	Playing
	Lost
	Won
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Phase(%d)", int8(p))
	}
}

// Over reports a terminal phase.
func (p Phase) Over() bool {
	return p == Lost || p == Won
}

// Move is an input event the host layer may dispatch to a [Game].
type Move int8

const (
	Open Move = iota
	Chord
	Flag
	Press
	Release
)

func (m Move) String() string {
	switch m {
	case Open:
		return "open"
	case Chord:
		return "chord"
	case Flag:
		return "flag"
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("Move(%d)", int8(m))
	}
}

func ParseMove(s string) (Move, error) {
	switch s {
	case "open":
		return Open, nil
	case "chord":
		return Chord, nil
	case "flag":
		return Flag, nil
	case "press":
		return Press, nil
	case "release":
		return Release, nil
	}
	return 0, fmt.Errorf("unknown move %q", s)
}

// Game is the rules state machine for one board. It is not safe for
// concurrent use: callers feed it one event at a time.
//
// Board is replaced, never mutated, once it has been exposed, so a snapshot
// taken from Board stays valid after later moves.
type Game struct {
	GameParams
	Phase Phase
	Tense bool // a button is held down
	Board Board

	rnd *rand.Rand
}

// NewGame returns a game in the [Ready] phase. r seeds mine placement; a nil
// r gets a randomly seeded source.
func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}
	g := &Game{
		GameParams: params,
		Phase:      Ready,
		Board:      NewBoard(params.Width, params.Height),
		rnd:        r,
	}
	return g, nil
}

// Resize throws the current board away and starts over in [Ready] with the
// given params.
func (g *Game) Resize(params GameParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	g.GameParams = params
	g.Phase = Ready
	g.Tense = false
	g.Board = NewBoard(params.Width, params.Height)
	return nil
}

// Permits reports whether the current phase accepts m. In [Ready] only
// [Open] is allowed, and it starts the game.
func (g *Game) Permits(m Move) bool {
	switch g.Phase {
	case Ready:
		return m == Open
	case Playing:
		return true
	default:
		return false
	}
}

// Status is the phase text shown to the player.
func (g *Game) Status() string {
	switch {
	case g.Phase == Playing && g.Tense:
		return "playing 😰"
	case g.Phase == Lost:
		return "lost 💀"
	case g.Phase == Won:
		return "won 😎"
	default:
		return g.Phase.String()
	}
}

// Apply dispatches a move at pos. Moves the phase does not permit are
// ignored. The first [Open] starts the game.
func (g *Game) Apply(m Move, pos int, middle bool) error {
	if !g.Permits(m) {
		return nil
	}
	switch m {
	case Open:
		if g.Phase == Ready {
			return g.InitGameAt(pos)
		}
		g.RevealAt(pos, false)
	case Chord:
		g.RevealAt(pos, true)
	case Flag:
		g.CycleFlagAt(pos)
	case Press:
		g.Gasp(pos, true, middle)
	case Release:
		g.Gasp(pos, false, middle)
	}
	return nil
}

// InitGameAt lays out the mines around the first click and opens it. It is a
// no-op outside [Ready] or for an index off the board.
func (g *Game) InitGameAt(pos int) error {
	if g.Phase != Ready || !g.ValidatePosition(pos) {
		return nil
	}

	board, err := Populate(NewBoard(g.Width, g.Height), pos, g.GameParams, g.rnd)
	if err != nil {
		return fmt.Errorf("unable to populate board: %w", err)
	}

	g.Phase = Playing
	g.Tense = false
	g.commit(Reveal(board, pos, g.Width, g.Height))
	return nil
}

// RevealAt opens pos. With safe set, a revealed numbered cell is chorded
// instead. Opening a mine loses the game.
func (g *Game) RevealAt(pos int, safe bool) {
	if g.Phase != Playing || !g.ValidatePosition(pos) {
		return
	}

	cell := g.Board[pos]

	if cell.Flagged {
		return
	}

	if cell.Revealed {
		if safe && cell.IsNumber() {
			g.commit(RevealSafeNumbers(g.Board, pos, g.Width, g.Height))
		}
		return
	}

	if cell.HasBomb() {
		g.Board = g.Board.Explode()
		g.Phase = Lost
		g.Tense = false
		Log.WithField("pos", pos).Debug("mine hit")
		return
	}

	g.commit(Reveal(g.Board.Clone(), pos, g.Width, g.Height))
}

// CycleFlagAt toggles the flag on a hidden cell.
func (g *Game) CycleFlagAt(pos int) {
	if g.Phase != Playing || !g.ValidatePosition(pos) || g.Board[pos].Revealed {
		return
	}

	board := g.Board.Clone()
	c := &board[pos]
	c.Flagged = !c.Flagged
	if c.Flagged {
		c.Display = GlyphFlag
	} else {
		c.Display = GlyphHidden
	}

	g.commit(board)
}

// Gasp tracks a held button. Pressing makes the game tense, releasing calms
// it. Holding the middle button over a revealed number previews the chord by
// marking its hidden neighbours.
func (g *Game) Gasp(pos int, down, middle bool) {
	if g.Phase != Playing || !g.ValidatePosition(pos) {
		return
	}

	g.Tense = down

	cell := g.Board[pos]
	if cell.IsNumber() && cell.Revealed && middle {
		g.Board = g.Board.MarkForNumberReveal(pos, down, g.Width, g.Height)
	}
}

// commit installs board, finishing the game if it is won.
func (g *Game) commit(board Board) {
	if board.AllSafeRevealed(g.MineCount) {
		g.Board = board.RevealBombs()
		g.Phase = Won
		g.Tense = false
		Log.WithField("params", g.GameParams.String()).Debug("game won")
		return
	}
	g.Board = board
}
