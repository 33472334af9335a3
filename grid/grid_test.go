package grid_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-ca/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intCell is the minimal grid.Cell implementation used across the test
// suite: an integer CA state with no extra attributes.
type intCell struct {
	state int
}

func (c intCell) State() int                  { return c.state }
func (c intCell) WithState(state int) intCell { return intCell{state: state} }

func TestAllocateAndShape(t *testing.T) {
	var g grid.Grid[intCell]
	require.NoError(t, g.Allocate([]int{4, 5}, intCell{}))
	assert.Equal(t, []int{4, 5}, g.Shape())
	assert.Equal(t, 2, g.Rank())
	assert.Equal(t, 20, g.Len())
}

func TestAllocateTwiceFails(t *testing.T) {
	var g grid.Grid[intCell]
	require.NoError(t, g.Allocate([]int{3}, intCell{}))
	err := g.Allocate([]int{3}, intCell{})
	assert.ErrorIs(t, err, grid.ErrAlreadyInitialized)
}

func TestAllocateInvalidRank(t *testing.T) {
	var g grid.Grid[intCell]
	err := g.Allocate([]int{1, 2, 3, 4}, intCell{})
	assert.ErrorIs(t, err, grid.ErrInvalidRank)
}

func TestAllocateInvalidDimension(t *testing.T) {
	var g grid.Grid[intCell]
	err := g.Allocate([]int{3, 0}, intCell{})
	assert.ErrorIs(t, err, grid.ErrInvalidDimension)
}

func TestGetSetNextAndSwap(t *testing.T) {
	var g grid.Grid[intCell]
	require.NoError(t, g.Allocate([]int{3, 3}, intCell{}))

	before, err := g.Get(grid.Coord{1, 1})
	require.NoError(t, err)
	assert.Equal(t, intCell{}, before)

	require.NoError(t, g.SetNext(grid.Coord{1, 1}, intCell{state: 7}))
	// current is untouched by SetNext.
	stillZero, err := g.Get(grid.Coord{1, 1})
	require.NoError(t, err)
	assert.Equal(t, intCell{}, stillZero)

	g.Swap()
	after, err := g.Get(grid.Coord{1, 1})
	require.NoError(t, err)
	assert.Equal(t, intCell{state: 7}, after)
}

func TestSwapIsDistinctBuffers(t *testing.T) {
	var g grid.Grid[intCell]
	require.NoError(t, g.Allocate([]int{2}, intCell{}))
	require.NoError(t, g.SetNext(grid.Coord{0}, intCell{state: 1}))
	g.Swap()
	require.NoError(t, g.SetNext(grid.Coord{0}, intCell{state: 2}))
	g.Swap()
	v, err := g.Get(grid.Coord{0})
	require.NoError(t, err)
	assert.Equal(t, intCell{state: 2}, v)
}

func TestResetNextClearsToZero(t *testing.T) {
	var g grid.Grid[intCell]
	require.NoError(t, g.Allocate([]int{2, 2}, intCell{state: 9}))
	require.NoError(t, g.SetNext(grid.Coord{0, 0}, intCell{state: 5}))
	g.ResetNext()
	g.Swap()
	v, err := g.Get(grid.Coord{0, 0})
	require.NoError(t, err)
	assert.Equal(t, intCell{}, v)
}

func TestCoordinateRoundTrip(t *testing.T) {
	var g grid.Grid[intCell]
	require.NoError(t, g.Allocate([]int{4, 5, 6}, intCell{}))
	for flat := 0; flat < g.Len(); flat++ {
		c := g.Coordinate(flat)
		require.True(t, g.InBounds(c))
	}
}

func TestGetOutOfBounds(t *testing.T) {
	var g grid.Grid[intCell]
	require.NoError(t, g.Allocate([]int{3}, intCell{}))
	_, err := g.Get(grid.Coord{3})
	assert.ErrorIs(t, err, grid.ErrCoordOutOfBounds)
}
