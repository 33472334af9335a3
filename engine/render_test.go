package engine_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlath-ca/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintGridBeforeShapedFails(t *testing.T) {
	e := engine.New[cell]()
	var sb strings.Builder
	err := e.PrintGrid(&sb)
	require.ErrorIs(t, err, engine.ErrCellsNull)
}

func TestPrintGridRank1(t *testing.T) {
	e := engine.New[cell]()
	require.NoError(t, e.SetDimensions1D(4, cell{state: 0}))
	require.NoError(t, e.InitCondition(1, 1.0))

	var sb strings.Builder
	require.NoError(t, e.PrintGrid(&sb))
	assert.Equal(t, "1 1 1 1\n", sb.String())
}

func TestPrintGridRank2(t *testing.T) {
	e := engine.New[cell]()
	require.NoError(t, e.SetDimensions2D(2, 3, cell{state: 0}))

	var sb strings.Builder
	require.NoError(t, e.PrintGrid(&sb))
	assert.Equal(t, "0 0 0\n0 0 0\n", sb.String())
}

func TestPrintGridRank3HasSliceHeaders(t *testing.T) {
	e := engine.New[cell]()
	require.NoError(t, e.SetDimensions3D(2, 2, 2, cell{state: 0}))

	var sb strings.Builder
	require.NoError(t, e.PrintGrid(&sb))
	out := sb.String()
	assert.Contains(t, out, "Printing 0'th slice of Tensor\n")
	assert.Contains(t, out, "Printing 1'th slice of Tensor\n")
}
