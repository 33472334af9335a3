package grid

// Coord is a point in the grid, one int per active axis (length 1, 2, or 3).
type Coord []int

// Clone returns an independent copy of c, so callers (notably Custom rules)
// can hand out a coordinate to a user function without risking aliasing.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)
	return out
}

// Cell is the contract a type T must satisfy to be stored in a Grid.
//
//   - comparable gives the "is not equal" test the engine's motion-write
//     convention relies on (a write is skipped when the new value equals
//     the zero value of T).
//   - State returns the CA state field; it is the only field Parity and
//     Majority read.
//   - WithState returns a copy of the receiver with State() replaced and
//     every other field left as received — when called on a zero-value
//     receiver, this yields "a fresh cell with just the state set", which
//     is how Parity/Majority reset every field but state.
type Cell[T any] interface {
	comparable
	State() int
	WithState(state int) T
}

// Zero returns the default-constructed value of T, the grid's "empty" cell.
func Zero[T Cell[T]]() T {
	var z T
	return z
}
