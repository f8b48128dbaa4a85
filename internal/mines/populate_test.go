package mines

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	t.Parallel()

	tests := []GameParams{
		{Width: 1, Height: 2, MineCount: 1},
		{Width: 3, Height: 3, MineCount: 8},
		Beginner,
		{Width: 9, Height: 9, MineCount: 35},
		Intermediate,
		Expert,
	}

	for _, params := range tests {
		t.Run(params.String(), func(t *testing.T) {
			t.Parallel()
			r := newTestRand(1)
			for firstClick := range params.Cells() {
				board, err := Populate(
					NewBoard(params.Width, params.Height), firstClick, params, r,
				)
				require.NoError(t, err)
				require.Len(t, board, params.Cells())

				assert.False(t, board[firstClick].HasBomb(), "mine at first click %d", firstClick)
				assert.Equal(t, params.MineCount, board.MineCount())

				for i, c := range board {
					if c.HasBomb() {
						continue
					}
					x, y := i%params.Width, i/params.Width
					want := 0
					for dx := -1; dx <= 1; dx++ {
						for dy := -1; dy <= 1; dy++ {
							xx, yy := x+dx, y+dy
							if (dx != 0 || dy != 0) &&
								params.ValidatePoint(xx, yy) &&
								board[params.Index(xx, yy)].HasBomb() {
								want++
							}
						}
					}
					assert.Equal(t, Content(want), c.Content, "cell %d", i)
				}
			}
		})
	}
}

func TestPopulateReachesEveryCell(t *testing.T) {
	params := GameParams{Width: 3, Height: 3, MineCount: 1}
	r := newTestRand(7)
	seen := make(map[int]bool)
	for range 500 {
		board, err := Populate(NewBoard(3, 3), 4, params, r)
		require.NoError(t, err)
		for i, c := range board {
			if c.HasBomb() {
				seen[i] = true
			}
		}
	}
	for i := range params.Cells() {
		if i == 4 {
			assert.False(t, seen[i])
		} else {
			assert.True(t, seen[i], "cell %d never mined", i)
		}
	}
}

func TestPopulateFullBoard(t *testing.T) {
	params := GameParams{Width: 9, Height: 9, MineCount: 80}
	board, err := Populate(NewBoard(9, 9), 40, params, newTestRand(1))
	require.NoError(t, err)
	assert.Equal(t, Content(8), board[40].Content)
	assert.Equal(t, 80, board.MineCount())
}

func TestPopulateErrors(t *testing.T) {
	tests := []struct {
		params     GameParams
		boardSize  int
		firstClick int
		err        error
	}{
		{GameParams{9, 9, 81}, 81, 0, ErrTooManyMines},
		{GameParams{9, 9, 100}, 81, 0, ErrTooManyMines},
		{GameParams{0, 9, 1}, 0, 0, ErrInvalidParams},
		{GameParams{9, 9, -1}, 81, 0, ErrInvalidParams},
		{GameParams{9, 9, 10}, 80, 0, ErrBoardSize},
		{GameParams{9, 9, 10}, 81, 81, ErrInvalidPosition},
		{GameParams{9, 9, 10}, 81, -1, ErrInvalidPosition},
	}
	for _, test := range tests {
		name := fmt.Sprintf("%s/%d/%d", test.params, test.boardSize, test.firstClick)
		t.Run(name, func(t *testing.T) {
			board := make(Board, test.boardSize)
			_, err := Populate(board, test.firstClick, test.params, newTestRand(1))
			assert.ErrorIs(t, err, test.err)
		})
	}
}
