package rule

import (
	"github.com/katalvlaran/lvlath-ca/grid"
	"github.com/katalvlaran/lvlath-ca/neighborhood"
)

// Kind selects which transition policy Apply uses.
type Kind int

const (
	// Majority is the default rule: new state = the neighbor state
	// (including focus) with the highest count, ties favor the lowest
	// state value.
	Majority Kind = iota
	// Parity: new state = (sum of neighbor states, including focus) mod
	// num_states.
	Parity
	// Custom delegates to a user-supplied CustomFunc.
	Custom
)

// String renders the rule name for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case Majority:
		return "Majority"
	case Parity:
		return "Parity"
	case Custom:
		return "Custom"
	default:
		return "Kind(unknown)"
	}
}

// CustomFunc is a user-supplied transition function.
//
//   - coord is the focus cell's coordinate (a private clone; mutating it
//     has no effect — return a new Coord to request motion).
//   - nbrs is the read-only neighborhood sequence, in geom.EnumerateOffsets
//     order for the engine's configured (rank, radius, shape).
//   - focus points at a copy of the current cell value; the function may
//     mutate any field through this pointer.
//
// The return value is the destination coordinate for the write: return
// coord unchanged for a stationary rule, or a different Coord to relocate
// the cell (the Stepper only commits the write if *focus is not the zero
// value of T once the function returns).
type CustomFunc[T grid.Cell[T]] func(coord grid.Coord, nbrs neighborhood.Sequence[T], focus *T) grid.Coord
