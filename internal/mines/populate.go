package mines

import (
	"fmt"
	"math/rand/v2"
)

// Populate places params.MineCount mines on board, never at firstClick, and
// fills every other cell with its adjacent mine count. The board is mutated
// in place and returned; it must not have been published yet.
//
// Configuration is checked up front: an impossible mine count is an error,
// never an endless placement loop.
func Populate(board Board, firstClick int, params GameParams, r *rand.Rand) (Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(board) != params.Cells() {
		return nil, fmt.Errorf(
			"%w: have %d cells, want %d", ErrBoardSize, len(board), params.Cells(),
		)
	}
	if !params.ValidatePosition(firstClick) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, firstClick)
	}

	width, height, mineCount := params.Unpack()

	/*
	 * Write down every cell except the first click, then pick mines off
	 * the list at random, swapping the last candidate into each hole.
	 */
	candidates := make([]int, 0, len(board)-1)
	for i := range board {
		if i != firstClick {
			candidates = append(candidates, i)
		}
	}
	for i := range board {
		board[i].Content = Unset
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		board[candidates[i]].Content = Mine
		k--
		candidates[i] = candidates[k]
	}

	for i := range board {
		if board[i].HasBomb() {
			continue
		}
		count := 0
		for j := range Neighbours(i, width, height).Valid() {
			if board[j].HasBomb() {
				count++
			}
		}
		board[i].Content = Content(count)
	}

	Log.WithField("params", params.String()).
		WithField("firstClick", firstClick).
		Debug("board populated")

	return board, nil
}
