// Package rule implements the three transition policies a cellular-
// automata engine may apply to a neighborhood: Parity (sum mod
// num_states), Majority (most common neighbor state, ties favor the lowest
// value), and Custom (a user-supplied function with full read/write access
// to the focus cell and the ability to relocate it).
//
// Parity and Majority only ever read Sequence[T].State(); every other field
// of T is reset to its zero value on write, because the new cell is built
// from grid.Zero[T]().WithState(...). Custom rules receive a copy of the
// focus value and may mutate any field through the focus pointer; the
// function's return value is the destination coordinate.
package rule
