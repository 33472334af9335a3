package galaxy_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-ca/galaxy"
	"github.com/katalvlaran/lvlath-ca/geom"
	"github.com/katalvlaran/lvlath-ca/grid"
	"github.com/katalvlaran/lvlath-ca/neighborhood"
	"github.com/stretchr/testify/assert"
)

func TestRuleEmptyCellNeverMoves(t *testing.T) {
	nbrs := neighborhood.Sequence[galaxy.Particle]{galaxy.NewBody(5)}
	focus := galaxy.Particle{}
	dest := galaxy.Rule(grid.Coord{2, 2}, nbrs, &focus)
	assert.Equal(t, grid.Coord{2, 2}, dest)
}

func TestRuleDriftsTowardDensestNeighbor(t *testing.T) {
	offsets := geom.EnumerateOffsets(2, 1, geom.Moore)

	nbrs := make(neighborhood.Sequence[galaxy.Particle], len(offsets))
	var heaviestIdx int
	for i, off := range offsets {
		if off[0] == 0 && off[1] == 0 {
			nbrs[i] = galaxy.NewBody(1) // the focus's own slot in the sequence
			continue
		}
		nbrs[i] = galaxy.NewBody(1)
		if off[0] == 1 && off[1] == 0 {
			nbrs[i] = galaxy.NewBody(100)
			heaviestIdx = i
		}
	}
	_ = heaviestIdx

	focus := galaxy.NewBody(1)
	dest := galaxy.Rule(grid.Coord{2, 2}, nbrs, &focus)
	assert.Equal(t, grid.Coord{3, 2}, dest)
}

func TestRuleStaysWhenNoNeighborIsHeavier(t *testing.T) {
	offsets := geom.EnumerateOffsets(1, 1, geom.Moore)
	nbrs := make(neighborhood.Sequence[galaxy.Particle], len(offsets))
	for i := range offsets {
		nbrs[i] = galaxy.NewBody(1)
	}

	focus := galaxy.NewBody(50)
	dest := galaxy.Rule(grid.Coord{4}, nbrs, &focus)
	assert.Equal(t, grid.Coord{4}, dest)
}
