package mines

// open uncovers a single cell at the given cascade depth and reports whether
// the cascade should continue into its orthogonal neighbours.
func open(board Board, pos, depth int) bool {
	c := &board[pos]

	if c.Revealed || c.HasBomb() || c.Flagged {
		return false
	}

	if c.IsNumber() {
		c.Display = c.Content.String()
		c.Revealed = true
	}

	if c.Content.IsBlank() {
		c.Display = GlyphBlank
		c.Revealed = true
	} else if depth > 1 {
		/* Numbered cells only carry the cascade one ring out. */
		return false
	}

	return true
}

type revealFrame struct {
	pos, depth int
	next       int
	dirs       [4]int
}

// Reveal uncovers pos and floods outward. Blank cells cascade without limit;
// a numbered cell keeps the cascade going only while it is at most one step
// from where the cascade started. Neighbours are visited down, up, left,
// right, depth first, exactly as a recursive fill would visit them.
//
// board is mutated and returned. Clone it first if it has been published.
func Reveal(board Board, pos, width, height int) Board {
	stack := make([]revealFrame, 0, 16)

	enter := func(pos, depth int) {
		if !open(board, pos, depth) {
			return
		}
		n := Neighbours(pos, width, height)
		stack = append(stack, revealFrame{
			pos:   pos,
			depth: depth,
			dirs:  [4]int{n[Down], n[Up], n[Left], n[Right]},
		})
	}

	enter(pos, 0)
	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top].next == len(stack[top].dirs) {
			stack = stack[:top]
			continue
		}
		next := stack[top].dirs[stack[top].next]
		depth := stack[top].depth + 1
		stack[top].next++
		if next != NoNeighbour {
			enter(next, depth)
		}
	}

	return board
}

// RevealSafeNumbers is the chord: when no neighbour of pos is a hidden,
// unflagged mine, every hidden unflagged numbered neighbour is shown. Blank
// cells and mines are left alone and nothing cascades. If any neighbour is
// unsafe the input board is returned untouched.
func RevealSafeNumbers(board Board, pos, width, height int) Board {
	n := Neighbours(pos, width, height)

	for i := range n.Valid() {
		if board[i].IsUnsafe() {
			return board
		}
	}

	clone := board.Clone()
	for i := range n.Valid() {
		c := &clone[i]
		if !c.Revealed && !c.Flagged && c.IsNumber() {
			c.Display = c.Content.String()
			c.Revealed = true
		}
	}
	return clone
}
