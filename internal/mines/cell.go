package mines

import (
	"strconv"
	"strings"
)

// Symbols shown to the player.
const (
	GlyphMine      = "💣"
	GlyphExplosion = "💥"
	GlyphFlag      = "🚩"
	GlyphWrongFlag = "❌"
	GlyphBlank     = " "
	GlyphHidden    = ""
)

type Content int8

const (
	Unset Content = -2 // board not populated yet
	Mine  Content = -1
	// 0-8 for a safe cell with given number of mined neighbours
)

func (c Content) IsMine() bool {
	return c == Mine
}

// IsNumber reports whether c is a count in 1..8. Blank cells (0) are not
// numbers.
func (c Content) IsNumber() bool {
	return 1 <= c && c <= 8
}

func (c Content) IsBlank() bool {
	return c == 0
}

func (c Content) String() string {
	switch {
	case c == Unset:
		return ""
	case c == Mine:
		return GlyphMine
	case 0 <= c && c <= 8:
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

// Cell is one grid position. It is a plain value: transforms return a
// modified copy and leave the receiver untouched.
type Cell struct {
	ID                    int
	Content               Content
	Display               string
	Revealed              bool
	Flagged               bool
	MarkedForNumberReveal bool
}

func NewCell(id int) Cell {
	return Cell{ID: id, Content: Unset, Display: GlyphHidden}
}

func (c Cell) IsNumber() bool {
	return c.Content.IsNumber()
}

func (c Cell) HasBomb() bool {
	return c.Content.IsMine()
}

// IsUnsafe reports a hidden, unflagged mine. A chord next to one would
// detonate it.
func (c Cell) IsUnsafe() bool {
	return !c.Revealed && c.HasBomb() && !c.Flagged
}

func (c Cell) Clone() Cell {
	return c
}

// RevealBomb discloses a mine at the end of a won game.
func (c Cell) RevealBomb() Cell {
	if c.HasBomb() {
		c.Revealed = true
		c.Display = GlyphMine
	}
	return c
}

// Explode marks mines as exploded and wrong flags as crossed out.
func (c Cell) Explode() Cell {
	if c.HasBomb() {
		c.Display = GlyphExplosion
	} else if c.Flagged {
		c.Display = GlyphWrongFlag
	}
	return c
}

// ClassName is the style hint for renderers: "pressed" while a chord is
// previewed over the cell, "numberN" once a numbered cell is revealed.
func (c Cell) ClassName() string {
	classNames := make([]string, 0, 2)
	if c.MarkedForNumberReveal {
		classNames = append(classNames, "pressed")
	}
	if c.IsNumber() && c.Revealed {
		classNames = append(classNames, "number"+c.Content.String())
	}
	return strings.Join(classNames, " ")
}

// Disabled reports a revealed blank cell, which accepts no further input.
func (c Cell) Disabled() bool {
	return c.Revealed && c.Content.IsBlank()
}
