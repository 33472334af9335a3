package neighborhood

import "github.com/katalvlaran/lvlath-ca/geom"

// Boundary selects how the neighborhood treats cells outside the grid's
// extent, or how it treats the focus cell itself when it lies on an edge.
type Boundary int

const (
	// Periodic wraps every axis (torus topology).
	Periodic Boundary = iota
	// Walled freezes any cell on the boundary of an active axis; interior
	// cells behave exactly like CutOff.
	Walled
	// CutOff drops neighbor coordinates that fall outside the grid on any
	// axis, shortening the emitted sequence near borders.
	CutOff
)

// String renders the boundary name for diagnostics and error messages.
func (b Boundary) String() string {
	switch b {
	case Periodic:
		return "Periodic"
	case Walled:
		return "Walled"
	case CutOff:
		return "CutOff"
	default:
		return "Boundary(unknown)"
	}
}

// Config bundles the neighborhood shape, boundary policy, and radius used
// to compute a View.
type Config struct {
	Shape    geom.Shape
	Boundary Boundary
	Radius   int
}

// Sequence is the ordered, read-only list of neighbor cell values around a
// focus cell, in the same canonical order as geom.EnumerateOffsets for the
// configured (rank, radius, shape).
type Sequence[T any] []T
