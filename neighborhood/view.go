package neighborhood

import (
	"github.com/katalvlaran/lvlath-ca/geom"
	"github.com/katalvlaran/lvlath-ca/grid"
)

// View returns the ordered sequence of neighbor values around the focus
// cell at coord, under cfg's shape, boundary, and radius, plus whether the
// focus cell is frozen (Walled boundary, coord on the edge of any active
// axis — the Stepper writes such cells through unchanged regardless of
// rule).
//
// The emitted order always follows geom.EnumerateOffsets(rank, cfg.Radius,
// cfg.Shape). When no neighbor is dropped (always under Periodic), a
// Custom rule may treat sequence position i as neighbor-offset
// geom.EnumerateOffsets(...)[i]; when CutOff or Walled drops out-of-range
// neighbors, the remaining values keep that relative order but later
// positions shift down.
//
// Complexity: O(Cardinality(rank, cfg.Radius, cfg.Shape)).
func View[T grid.Cell[T]](g *grid.Grid[T], c grid.Coord, cfg Config) (Sequence[T], bool) {
	dims := g.Shape()
	rank := len(dims)
	frozen := cfg.Boundary == Walled && onEdge(c, dims)

	offsets := geom.EnumerateOffsets(rank, cfg.Radius, cfg.Shape)
	seq := make(Sequence[T], 0, len(offsets))

	for _, o := range offsets {
		coord := make(grid.Coord, rank)

		if cfg.Boundary == Periodic {
			for i := 0; i < rank; i++ {
				coord[i] = geom.Wrap(c[i], o[i], dims[i])
			}
		} else {
			// Walled (interior cells) and CutOff both enumerate by
			// absolute neighbor coordinate and drop out-of-range hits.
			inBounds := true
			for i := 0; i < rank; i++ {
				coord[i] = c[i] + o[i]
				if coord[i] < 0 || coord[i] >= dims[i] {
					inBounds = false
					break
				}
			}
			if !inBounds {
				continue
			}
		}

		// coord is constructed to satisfy InBounds in both branches above.
		v, _ := g.Get(coord)
		seq = append(seq, v)
	}

	return seq, frozen
}

// onEdge reports whether coord touches index 0 or D-1 on any active axis.
func onEdge(c grid.Coord, dims []int) bool {
	for i, d := range dims {
		if c[i] == 0 || c[i] == d-1 {
			return true
		}
	}
	return false
}
