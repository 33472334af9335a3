package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlath-ca/geom"
	"github.com/katalvlaran/lvlath-ca/grid"
	"github.com/katalvlaran/lvlath-ca/neighborhood"
	"github.com/katalvlaran/lvlath-ca/rule"
)

// Engine is the configuration object and public operation set for a
// cellular-automata simulation: dimension setup, boundary setup, rule
// setup, initial seeding, stepping, and inspection.
//
// Engine is created Unconfigured (New); SetDimensions1D/2D/3D moves it to
// Shaped exactly once. All other setters may be called in any phase and
// take effect on the next Step or InitCondition.
type Engine[T grid.Cell[T]] struct {
	g     grid.Grid[T]
	phase Phase

	neighborhoodShape geom.Shape
	boundary          neighborhood.Boundary
	radius            int
	numStates         int
	ruleKind          rule.Kind
	stepsTaken        int
	colorize          bool

	rng *rand.Rand
}

// New returns an unconfigured Engine with conservative defaults: Moore
// neighborhood, Periodic boundary at radius 1, 2 states, Majority rule,
// and a time-seeded RNG (override with SetSeed for reproducibility).
func New[T grid.Cell[T]]() *Engine[T] {
	return &Engine[T]{
		phase:             Unconfigured,
		neighborhoodShape: geom.Moore,
		boundary:          neighborhood.Periodic,
		radius:            1,
		numStates:         2,
		ruleKind:          rule.Majority,
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetNeighborhood selects Moore or Von Neumann. Always succeeds.
func (e *Engine[T]) SetNeighborhood(shape geom.Shape) {
	e.neighborhoodShape = shape
}

// SetBoundary selects the boundary policy and radius. Fails with
// ErrInvalidRadius if radius <= 0, or ErrRadiusTooLarge if radius exceeds
// floor(Di/2) for any axis already configured (SetDimensions* re-validates
// this for the radius in effect at that time).
func (e *Engine[T]) SetBoundary(b neighborhood.Boundary, radius int) error {
	if radius <= 0 {
		return ErrInvalidRadius
	}
	if err := e.checkRadius(radius); err != nil {
		return err
	}
	e.boundary = b
	e.radius = radius
	return nil
}

// checkRadius validates radius against every already-allocated axis.
func (e *Engine[T]) checkRadius(radius int) error {
	if e.phase == Unconfigured {
		return nil
	}
	for _, d := range e.g.Shape() {
		if radius > d/2 {
			return ErrRadiusTooLarge
		}
	}
	return nil
}

// SetNumStates sets the number of CA states. Fails with ErrInvalidNumStates
// if n < 2.
func (e *Engine[T]) SetNumStates(n int) error {
	if n < 2 {
		return ErrInvalidNumStates
	}
	e.numStates = n
	return nil
}

// SetRule selects Majority, Parity, or Custom. Always succeeds; a missing
// Custom function is only detected at Step time.
func (e *Engine[T]) SetRule(k rule.Kind) {
	e.ruleKind = k
}

// SetSeed pins the pseudo-random stream InitCondition draws from, for
// reproducible seeding. Without a call to SetSeed, New derives a seed from
// the wall clock.
func (e *Engine[T]) SetSeed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// Phase returns the engine's current lifecycle phase.
func (e *Engine[T]) Phase() Phase {
	return e.phase
}

// StepsTaken returns the number of generations committed so far.
func (e *Engine[T]) StepsTaken() int {
	return e.stepsTaken
}

// Shape returns the active grid dimensions, or nil if Unconfigured.
func (e *Engine[T]) Shape() []int {
	return e.g.Shape()
}

// Cell returns the current value at coord, for inspection between steps.
func (e *Engine[T]) Cell(coord grid.Coord) (T, error) {
	return e.g.Get(coord)
}

// SetCell overwrites the current value at coord directly. InitCondition
// only ever sets the State field (per the Cell contract's WithState
// semantics); SetCell is how a caller populates the remaining payload of a
// richer cell type (e.g. galaxy.Particle's mass) once seeding has chosen
// which coordinates are live. It never changes phase.
func (e *Engine[T]) SetCell(coord grid.Coord, v T) error {
	return e.g.Set(coord, v)
}

// setDimensions is shared by SetDimensions1D/2D/3D.
func (e *Engine[T]) setDimensions(dims []int, fill T) error {
	if e.phase != Unconfigured {
		return ErrAlreadyInitialized
	}
	for _, d := range dims {
		if e.radius > d/2 {
			return ErrRadiusTooLarge
		}
	}
	if err := e.g.Allocate(dims, fill); err != nil {
		switch {
		case errors.Is(err, grid.ErrAlreadyInitialized):
			return ErrAlreadyInitialized
		default:
			return ErrAllocationFailed
		}
	}
	e.phase = Shaped
	return nil
}

// SetDimensions1D configures a rank-1 grid of length d1, filled with fill.
// Fails with ErrAlreadyInitialized if a grid already exists, or
// ErrRadiusTooLarge if the currently configured radius violates
// radius <= floor(d1/2).
func (e *Engine[T]) SetDimensions1D(d1 int, fill T) error {
	return e.setDimensions([]int{d1}, fill)
}

// SetDimensions2D configures a rank-2 grid of shape (d1, d2).
func (e *Engine[T]) SetDimensions2D(d1, d2 int, fill T) error {
	return e.setDimensions([]int{d1, d2}, fill)
}

// SetDimensions3D configures a rank-3 grid of shape (d1, d2, d3).
func (e *Engine[T]) SetDimensions3D(d1, d2, d3 int, fill T) error {
	return e.setDimensions([]int{d1, d2, d3}, fill)
}

// InitCondition performs the probabilistic fill: for each cell in current,
// independently draws a uniform [0,1) sample, and sets state=x when the
// draw is below p. Other fields are left as the grid's fill value. Fails
// with ErrInvalidState if dimensions are not yet set, or
// ErrInvalidStateCondition if x is outside [0, num_states).
func (e *Engine[T]) InitCondition(x int, p float64) error {
	if e.phase == Unconfigured {
		return ErrInvalidState
	}
	if x < 0 || x >= e.numStates {
		return ErrInvalidStateCondition
	}

	total := e.g.Len()
	for flat := 0; flat < total; flat++ {
		coord := e.g.Coordinate(flat)
		if e.rng.Float64() < p {
			cur, _ := e.g.Get(coord)
			_ = e.g.Set(coord, cur.WithState(x))
		}
	}
	e.phase = Seeded
	return nil
}
