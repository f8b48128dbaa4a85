package command

import (
	"iter"
	"strings"
)

// Lines splits text on newlines, yielding each piece with its index.
// Trailing carriage returns are dropped.
func Lines(text string) iter.Seq2[int, string] {
	return byPiece(text, "\n")
}

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, strings.TrimSuffix(piece, "\r")) {
				return
			}
			i += 1
		}
	}
}
