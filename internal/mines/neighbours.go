package mines

import "iter"

// NoNeighbour marks a neighbour slot that falls off the grid.
const NoNeighbour = -1

// Slots of a [Neighbourhood].
const (
	Left = iota
	Right
	Up
	Down
	LeftUp
	LeftDown
	RightUp
	RightDown
)

// Neighbourhood holds the indices of the eight cells around a center, in
// [Left], [Right], [Up], [Down], [LeftUp], [LeftDown], [RightUp], [RightDown]
// order. Off-grid slots hold [NoNeighbour].
type Neighbourhood [8]int

// Neighbours returns the neighbourhood of center on a width x height grid.
// center must lie in [0, width*height).
func Neighbours(center, width, height int) Neighbourhood {
	var (
		leftEmpty  = center%width == 0
		upEmpty    = center < width
		downEmpty  = center >= width*(height-1)
		rightEmpty = (center+1)%width == 0
	)

	n := Neighbourhood{
		NoNeighbour, NoNeighbour, NoNeighbour, NoNeighbour,
		NoNeighbour, NoNeighbour, NoNeighbour, NoNeighbour,
	}

	if !leftEmpty {
		n[Left] = center - 1
		if !upEmpty {
			n[LeftUp] = center - width - 1
		}
		if !downEmpty {
			n[LeftDown] = center + width - 1
		}
	}
	if !rightEmpty {
		n[Right] = center + 1
		if !upEmpty {
			n[RightUp] = center - width + 1
		}
		if !downEmpty {
			n[RightDown] = center + width + 1
		}
	}
	if !upEmpty {
		n[Up] = center - width
	}
	if !downEmpty {
		n[Down] = center + width
	}

	return n
}

// Valid yields the on-grid indices of n in slot order.
func (n Neighbourhood) Valid() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, i := range n {
			if i == NoNeighbour {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
