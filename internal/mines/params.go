package mines

import (
	"fmt"
	"strings"
)

// MaxCells bounds width*height of any board.
const MaxCells = 10_000

type GameParams struct {
	Width, Height, MineCount int
}

var (
	Beginner     = GameParams{Width: 9, Height: 9, MineCount: 10}
	Intermediate = GameParams{Width: 16, Height: 16, MineCount: 40}
	Expert       = GameParams{Width: 30, Height: 16, MineCount: 99}
)

// Preset looks up one of the canonical board sizes by name.
func Preset(name string) (GameParams, bool) {
	switch strings.ToLower(name) {
	case "beginner":
		return Beginner, true
	case "intermediate", "intermediary":
		return Intermediate, true
	case "expert":
		return Expert, true
	}
	return GameParams{}, false
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.MineCount < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParams, p)
	}
	if p.Width > MaxCells || p.Height > MaxCells || p.Cells() > MaxCells {
		return fmt.Errorf("%w: %s, at most %d allowed", ErrBoardTooLarge, p, MaxCells)
	}
	if p.MineCount >= p.Cells() {
		return fmt.Errorf("%w: %s", ErrTooManyMines, p)
	}
	return nil
}

func (p GameParams) ValidatePosition(pos int) bool {
	return 0 <= pos && pos < p.Cells()
}

func (p GameParams) ValidatePoint(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// Index converts a point to a row-major cell index.
func (p GameParams) Index(x, y int) int {
	return y*p.Width + x
}

func (p GameParams) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

// ParseParams reads params in the "width:height:mines" form produced by
// [GameParams.String].
func ParseParams(s string) (*GameParams, error) {
	p := &GameParams{}
	ss := strings.ReplaceAll(s, ":", " ")
	n, err := fmt.Sscanf(ss, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`%w: cannot parse "%s" (n = %d, err = %v)`, ErrInvalidParams, s, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
