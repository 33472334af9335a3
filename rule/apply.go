package rule

import (
	"github.com/katalvlaran/lvlath-ca/grid"
	"github.com/katalvlaran/lvlath-ca/neighborhood"
)

// Apply computes the new value and destination coordinate for a focus
// cell, given its current coordinate, the neighborhood sequence, and the
// rule configuration.
//
//   - Parity sums Sequence[T].State() over every neighbor (the canonical
//     ordering always includes the focus cell) and reduces mod numStates.
//   - Majority counts neighbor states in [0, numStates) and returns the
//     state with the highest count, the lowest state value winning ties.
//   - Custom invokes fn with a copy of focus; it is an error
//     (ErrCustomRuleMissing) to request Custom without supplying fn.
//
// Parity and Majority always return coord unchanged and a cell built from
// grid.Zero[T]() with only State set, per the engine's field-reset
// contract. Custom returns whatever coordinate fn returns and whatever
// value fn leaves behind.
//
// Complexity: O(len(nbrs)) for Parity/Majority, O(1) plus the cost of fn
// for Custom.
func Apply[T grid.Cell[T]](
	kind Kind,
	focus T,
	coord grid.Coord,
	nbrs neighborhood.Sequence[T],
	numStates int,
	fn CustomFunc[T],
) (T, grid.Coord, error) {
	switch kind {
	case Parity:
		return applyParity(nbrs, numStates), coord, nil
	case Majority:
		return applyMajority(nbrs, numStates), coord, nil
	case Custom:
		if fn == nil {
			return grid.Zero[T](), coord, ErrCustomRuleMissing
		}
		newVal := focus
		newCoord := fn(coord.Clone(), nbrs, &newVal)
		if newCoord == nil {
			newCoord = coord
		}
		return newVal, newCoord, nil
	default:
		return grid.Zero[T](), coord, ErrUnknownRule
	}
}

func applyParity[T grid.Cell[T]](nbrs neighborhood.Sequence[T], numStates int) T {
	sum := 0
	for _, n := range nbrs {
		sum += n.State()
	}
	newState := sum % numStates
	if newState < 0 {
		newState += numStates
	}
	return grid.Zero[T]().WithState(newState)
}

func applyMajority[T grid.Cell[T]](nbrs neighborhood.Sequence[T], numStates int) T {
	counts := make([]int, numStates)
	for _, n := range nbrs {
		s := n.State()
		if s >= 0 && s < numStates {
			counts[s]++
		}
	}
	best := 0
	for s := 1; s < numStates; s++ {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return grid.Zero[T]().WithState(best)
}
