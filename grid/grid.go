package grid

import "fmt"

// Grid owns a current and a next buffer of cells for a rank-1, rank-2, or
// rank-3 rectangular lattice. Exactly one rank is active for the Grid's
// lifetime, fixed at Allocate time.
//
// Grid carries no internal lock: the Stepper (package engine) is
// responsible for partitioning writes into next so each coordinate is
// touched by at most one worker per step (except deliberate motion-rule
// collisions, which are documented, last-writer-wins behavior).
type Grid[T Cell[T]] struct {
	dims    []int // axis lengths, length == rank
	strides []int // row-major strides, same length as dims
	current []T   // flat buffer, len == product(dims)
	next    []T   // flat buffer, same length as current
}

// Allocate creates both buffers for the given shape, filled with fill.
// It fails with ErrAlreadyInitialized if this Grid already owns buffers,
// ErrInvalidRank if len(dims) is not 1, 2, or 3, ErrInvalidDimension if any
// axis length is < 1, and ErrAllocationFailed if the flat length would
// overflow a platform int.
//
// Complexity: O(size) where size = product(dims).
func (g *Grid[T]) Allocate(dims []int, fill T) error {
	if g.current != nil {
		return ErrAlreadyInitialized
	}
	if len(dims) < 1 || len(dims) > 3 {
		return ErrInvalidRank
	}
	for _, d := range dims {
		if d < 1 {
			return ErrInvalidDimension
		}
	}

	size, overflow := safeFlatSize(dims)
	if overflow {
		return ErrAllocationFailed
	}

	strides := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= dims[i]
	}

	current := make([]T, size)
	next := make([]T, size)
	for i := range current {
		current[i] = fill
		next[i] = fill
	}

	g.dims = append([]int(nil), dims...)
	g.strides = strides
	g.current = current
	g.next = next

	return nil
}

// safeFlatSize multiplies dims together, reporting overflow rather than
// wrapping, so Allocate can surface ErrAllocationFailed instead of silently
// under-allocating.
func safeFlatSize(dims []int) (size int, overflow bool) {
	size = 1
	for _, d := range dims {
		if d != 0 && size > (1<<62)/d {
			return 0, true
		}
		size *= d
	}
	return size, false
}

// Shape returns the active axis lengths. The returned slice is a copy.
func (g *Grid[T]) Shape() []int {
	return append([]int(nil), g.dims...)
}

// Rank returns the number of active axes (1, 2, or 3), or 0 if unallocated.
func (g *Grid[T]) Rank() int {
	return len(g.dims)
}

// InBounds reports whether coord is a valid index into this Grid's shape.
func (g *Grid[T]) InBounds(coord Coord) bool {
	if len(coord) != len(g.dims) {
		return false
	}
	for i, c := range coord {
		if c < 0 || c >= g.dims[i] {
			return false
		}
	}
	return true
}

// index flattens coord into an offset into the backing slices. The caller
// must ensure InBounds(coord).
func (g *Grid[T]) index(coord Coord) int {
	idx := 0
	for i, c := range coord {
		idx += c * g.strides[i]
	}
	return idx
}

// Get returns the current value at coord.
//
// Complexity: O(rank).
func (g *Grid[T]) Get(coord Coord) (T, error) {
	if !g.InBounds(coord) {
		var zero T
		return zero, fmt.Errorf("grid.Get(%v): %w", []int(coord), ErrCoordOutOfBounds)
	}
	return g.current[g.index(coord)], nil
}

// Set writes v directly into the current buffer at coord, bypassing the
// next/Swap protocol. It exists for seeding (engine.InitCondition and
// engine.SetCell) and tests; a running Stepper must never call it mid-step.
//
// Complexity: O(rank).
func (g *Grid[T]) Set(coord Coord, v T) error {
	if !g.InBounds(coord) {
		return fmt.Errorf("grid.Set(%v): %w", []int(coord), ErrCoordOutOfBounds)
	}
	g.current[g.index(coord)] = v
	return nil
}

// SetNext writes v into the next buffer at coord. It does not touch
// current, preserving the "present vs. next" isolation a step relies on.
//
// Complexity: O(rank).
func (g *Grid[T]) SetNext(coord Coord, v T) error {
	if !g.InBounds(coord) {
		return fmt.Errorf("grid.SetNext(%v): %w", []int(coord), ErrCoordOutOfBounds)
	}
	g.next[g.index(coord)] = v
	return nil
}

// ResetNext fills the entire next buffer with the zero value of T. The
// Stepper calls this once per step, before iterating, so destinations a
// motion rule never writes to remain empty rather than carrying over a
// stale value from two generations back.
//
// Complexity: O(size).
func (g *Grid[T]) ResetNext() {
	var zero T
	for i := range g.next {
		g.next[i] = zero
	}
}

// Swap exchanges current and next by swapping the two backing slices — an
// O(1) descriptor exchange, not an O(size) element-wise copy. Both buffers
// remain allocated and distinct after Swap.
func (g *Grid[T]) Swap() {
	g.current, g.next = g.next, g.current
}

// Len returns the number of cells in the grid (product of Shape()).
func (g *Grid[T]) Len() int {
	return len(g.current)
}

// Coordinate converts a flat row-major index back to a Coord.
//
// Complexity: O(rank).
func (g *Grid[T]) Coordinate(flat int) Coord {
	c := make(Coord, len(g.dims))
	for i, stride := range g.strides {
		c[i] = flat / stride
		flat %= stride
	}
	return c
}

// CurrentSnapshot copies the current buffer, for tests asserting that a
// step phase never mutates current before the barrier swap.
func (g *Grid[T]) CurrentSnapshot() []T {
	return append([]T(nil), g.current...)
}
