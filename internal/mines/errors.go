package mines

import "errors"

var (
	ErrInvalidParams   = errors.New("invalid game params")
	ErrTooManyMines    = errors.New("mine count must be less than the number of cells")
	ErrInvalidPosition = errors.New("invalid cell position")
	ErrBoardSize       = errors.New("board size does not match game params")
	ErrBoardTooLarge   = errors.New("board has too many cells")
)
