package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recursiveReveal is the plain recursive fill that Reveal must match.
func recursiveReveal(board Board, pos, width, height, depth int) {
	c := &board[pos]
	if c.Revealed || c.HasBomb() || c.Flagged {
		return
	}
	if c.IsNumber() {
		c.Display = c.Content.String()
		c.Revealed = true
	}
	if c.Content == 0 {
		c.Display = " "
		c.Revealed = true
	} else if depth > 1 {
		return
	}
	n := Neighbours(pos, width, height)
	for _, next := range []int{n[Down], n[Up], n[Left], n[Right]} {
		if next >= 0 {
			recursiveReveal(board, next, width, height, depth+1)
		}
	}
}

func TestRevealNoOps(t *testing.T) {
	board, w, h := layout(
		"*..",
		"...",
		"...",
	)

	res := Reveal(board.Clone(), 0, w, h)
	assert.Equal(t, board, res, "mine")

	flagged := board.Clone()
	flagged[8].Flagged = true
	flagged[8].Display = GlyphFlag
	res = Reveal(flagged.Clone(), 8, w, h)
	assert.Equal(t, flagged, res, "flagged")

	revealed := board.Clone()
	revealed[8].Revealed = true
	revealed[8].Display = GlyphBlank
	res = Reveal(revealed.Clone(), 8, w, h)
	assert.Equal(t, revealed, res, "already revealed")
}

func TestRevealZeroIsland(t *testing.T) {
	board, w, h := layout(
		".........",
		".........",
		"..*****..",
		"..*...*..",
		"..*...*..",
		"..*...*..",
		"..*****..",
		".........",
		".........",
	)
	require.Equal(t, Content(0), board[40].Content)

	res := Reveal(board, 40, w, h)

	want := make(map[int]bool)
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			want[y*w+x] = true
		}
	}
	assert.Equal(t, want, revealedSet(res))
	assert.Equal(t, GlyphBlank, res[40].Display)
	assert.Equal(t, "3", res[31].Display)
	assert.Equal(t, "5", res[30].Display)
}

func TestRevealStopsPastSecondRing(t *testing.T) {
	board, w, h := layout(
		"*******",
		".......",
	)

	res := Reveal(board, 10, w, h)

	assert.Equal(t, map[int]bool{8: true, 9: true, 10: true, 11: true, 12: true}, revealedSet(res))
	assert.False(t, res[7].Revealed)
	assert.False(t, res[13].Revealed)
}

func TestRevealBlankRowStopsAtMines(t *testing.T) {
	board, w, h := layout("..*..")

	res := Reveal(board.Clone(), 0, w, h)
	assert.Equal(t, map[int]bool{0: true, 1: true}, revealedSet(res))
	assert.Equal(t, GlyphBlank, res[0].Display)
	assert.Equal(t, "1", res[1].Display)

	res = Reveal(board.Clone(), 4, w, h)
	assert.Equal(t, map[int]bool{3: true, 4: true}, revealedSet(res))
}

func TestRevealSkipsFlaggedCells(t *testing.T) {
	board, w, h := layout(
		".....",
		".....",
		"....*",
	)
	board[2].Flagged = true
	board[2].Display = GlyphFlag

	res := Reveal(board, 0, w, h)

	assert.False(t, res[2].Revealed)
	assert.Equal(t, GlyphFlag, res[2].Display)
	assert.True(t, res[1].Revealed)
	assert.True(t, res[10].Revealed)
}

func TestRevealMatchesRecursiveFill(t *testing.T) {
	params := []GameParams{Beginner, Intermediate, Expert, {Width: 12, Height: 5, MineCount: 20}}
	r := newTestRand(3)
	for _, p := range params {
		for range 20 {
			first := r.IntN(p.Cells())
			board, err := Populate(NewBoard(p.Width, p.Height), first, p, r)
			require.NoError(t, err)

			for pos := range p.Cells() {
				if pos%7 != 0 {
					continue
				}
				want := board.Clone()
				recursiveReveal(want, pos, p.Width, p.Height, 0)
				got := Reveal(board.Clone(), pos, p.Width, p.Height)
				require.Equal(t, want, got, "%s from %d", p, pos)

				for _, c := range got {
					require.False(t, c.HasBomb() && c.Revealed, "revealed mine %d", c.ID)
				}
			}
		}
	}
}

func TestRevealSafeNumbersBlockedByHiddenMine(t *testing.T) {
	board, w, h := layout(
		"*..",
		"...",
		"...",
	)
	board[4].Revealed = true
	board[4].Display = "1"
	snapshot := board.Clone()

	res := RevealSafeNumbers(board, 4, w, h)

	assert.Equal(t, snapshot, res)
	assert.Same(t, &board[0], &res[0])
}

func TestRevealSafeNumbers(t *testing.T) {
	board, w, h := layout(
		"*...",
		"....",
		"....",
		"....",
	)
	board[0].Flagged = true
	board[0].Display = GlyphFlag
	board[5].Revealed = true
	board[5].Display = "1"

	res := RevealSafeNumbers(board, 5, w, h)

	for _, i := range []int{1, 4} {
		assert.True(t, res[i].Revealed, "cell %d", i)
		assert.Equal(t, "1", res[i].Display)
	}
	for _, i := range []int{2, 6, 8, 9, 10} {
		assert.False(t, res[i].Revealed, "blank cell %d", i)
	}
	assert.False(t, res[0].Revealed)
	assert.Equal(t, GlyphFlag, res[0].Display)

	assert.False(t, board[1].Revealed, "input board mutated")
}

func TestRevealSafeNumbersStaysAroundChord(t *testing.T) {
	board, w, h := layout(
		"*.....",
		"......",
		"....*.",
	)
	for _, i := range []int{0, 6} {
		board[i].Flagged = true
		board[i].Display = GlyphFlag
	}
	board[7].Revealed = true
	board[7].Display = "1"
	require.Equal(t, Content(1), board[6].Content)

	res := RevealSafeNumbers(board, 7, w, h)

	assert.True(t, res[1].Revealed)
	assert.Equal(t, "1", res[1].Display)

	assert.False(t, res[6].Revealed, "flagged number")
	assert.True(t, res[6].Flagged)
	assert.Equal(t, GlyphFlag, res[6].Display)

	for _, i := range []int{9, 10, 11, 15, 17} {
		require.True(t, res[i].IsNumber(), "cell %d", i)
		assert.False(t, res[i].Revealed, "distant number %d", i)
	}
}
