package mines

import (
	"fmt"
	"strings"
)

// Board is a row-major sequence of width*height cells. Once a board has been
// handed out, it is treated as an immutable snapshot: every transform below
// returns a fresh slice.
type Board []Cell

// NewBoard allocates an unpopulated board.
func NewBoard(width, height int) Board {
	board := make(Board, width*height)
	for i := range board {
		board[i] = NewCell(i)
	}
	return board
}

func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for i, c := range b {
		clone[i] = c.Clone()
	}
	return clone
}

func (b Board) mapCells(f func(Cell) Cell) Board {
	res := make(Board, len(b))
	for i, c := range b {
		res[i] = f(c)
	}
	return res
}

func (b Board) RevealedCount() (count int) {
	for _, c := range b {
		if c.Revealed {
			count++
		}
	}
	return
}

func (b Board) MineCount() (count int) {
	for _, c := range b {
		if c.HasBomb() {
			count++
		}
	}
	return
}

// AllSafeRevealed is the win predicate: every cell that is not a mine has
// been revealed.
func (b Board) AllSafeRevealed(mineCount int) bool {
	return b.RevealedCount() == len(b)-mineCount
}

// Explode discloses a lost board.
func (b Board) Explode() Board {
	return b.mapCells(Cell.Explode)
}

// RevealBombs discloses a won board.
func (b Board) RevealBombs() Board {
	return b.mapCells(Cell.RevealBomb)
}

// MarkForNumberReveal sets or clears the chord preview on the hidden
// neighbours of pos.
func (b Board) MarkForNumberReveal(pos int, mark bool, width, height int) Board {
	clone := b.Clone()
	for i := range Neighbours(pos, width, height).Valid() {
		if !clone[i].Revealed {
			clone[i].MarkedForNumberReveal = mark
		}
	}
	return clone
}

func renderCell(c Cell) string {
	switch c.Display {
	case GlyphHidden:
		return "#"
	case GlyphBlank:
		return "."
	case GlyphFlag:
		return "F"
	case GlyphMine:
		return "*"
	case GlyphExplosion:
		return "X"
	case GlyphWrongFlag:
		return "x"
	default:
		return c.Display
	}
}

// Render draws the board as ASCII, one row per line.
func (b Board) Render(width int) string {
	var sb strings.Builder
	for y := range len(b) / width {
		for x := range width {
			i := y*width + x
			if i >= len(b) {
				break
			}
			fmt.Fprint(&sb, renderCell(b[i])+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
