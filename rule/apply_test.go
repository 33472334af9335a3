package rule_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-ca/grid"
	"github.com/katalvlaran/lvlath-ca/neighborhood"
	"github.com/katalvlaran/lvlath-ca/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intCell struct{ state int }

func (c intCell) State() int                  { return c.state }
func (c intCell) WithState(state int) intCell { return intCell{state: state} }

func seqOf(states ...int) neighborhood.Sequence[intCell] {
	seq := make(neighborhood.Sequence[intCell], len(states))
	for i, s := range states {
		seq[i] = intCell{state: s}
	}
	return seq
}

// TestParityScenarioS1 is scenario S1: neighbor states (focus + both
// periodic neighbors) {0, 1, 1} at num_states=2 gives (0+1+1) mod 2 = 0.
func TestParityScenarioS1(t *testing.T) {
	nbrs := seqOf(0, 1, 1)
	got, coord, err := rule.Apply[intCell](rule.Parity, intCell{state: 1}, grid.Coord{0}, nbrs, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, intCell{state: 0}, got)
	assert.Equal(t, grid.Coord{0}, coord)
}

// TestParityIsBounded is testable property P6: 0 <= next_state < num_states.
func TestParityIsBounded(t *testing.T) {
	for numStates := 2; numStates <= 5; numStates++ {
		nbrs := seqOf(0, 1, 2, 3, 4, 1, 2)
		got, _, err := rule.Apply[intCell](rule.Parity, intCell{}, grid.Coord{0}, nbrs, numStates, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.State(), 0)
		assert.Less(t, got.State(), numStates)
	}
}

// TestMajorityScenarioS2 is scenario S2's fixed point at idx0:
// neighbor multiset {1,1,1} -> 1.
func TestMajorityScenarioS2(t *testing.T) {
	got, _, err := rule.Apply[intCell](rule.Majority, intCell{state: 1}, grid.Coord{0}, seqOf(1, 1, 1), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, intCell{state: 1}, got)
}

// TestMajorityScenarioS3TieBreaksLow is scenario S3's tie at idx4:
// neighbor multiset {1,0} ties are broken toward the lowest state value.
func TestMajorityScenarioS3TieBreaksLow(t *testing.T) {
	got, _, err := rule.Apply[intCell](rule.Majority, intCell{state: 1}, grid.Coord{4}, seqOf(1, 0), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, intCell{state: 0}, got)
}

// TestMajorityIsStable is testable property P7: if all neighbors already
// share state s, Majority leaves the focus in state s.
func TestMajorityIsStable(t *testing.T) {
	for s := 0; s < 3; s++ {
		nbrs := seqOf(s, s, s, s, s)
		got, _, err := rule.Apply[intCell](rule.Majority, intCell{state: s}, grid.Coord{0}, nbrs, 3, nil)
		require.NoError(t, err)
		assert.Equal(t, s, got.State())
	}
}

// TestCustomRequiresFunction checks the Custom-rule-missing contract.
func TestCustomRequiresFunction(t *testing.T) {
	_, _, err := rule.Apply[intCell](rule.Custom, intCell{}, grid.Coord{0}, seqOf(0), 2, nil)
	assert.ErrorIs(t, err, rule.ErrCustomRuleMissing)
}

// TestCustomIdempotence is testable property P8: a Custom rule returning
// the focus unchanged leaves the grid unchanged across a step.
func TestCustomIdempotence(t *testing.T) {
	identity := func(coord grid.Coord, nbrs neighborhood.Sequence[intCell], focus *intCell) grid.Coord {
		return coord
	}
	got, coord, err := rule.Apply[intCell](rule.Custom, intCell{state: 3}, grid.Coord{1, 2}, seqOf(0, 0), 2, identity)
	require.NoError(t, err)
	assert.Equal(t, intCell{state: 3}, got)
	assert.Equal(t, grid.Coord{1, 2}, coord)
}

// TestCustomMotion checks a Custom rule can relocate the focus cell by
// returning a different coordinate.
func TestCustomMotion(t *testing.T) {
	moveRight := func(coord grid.Coord, nbrs neighborhood.Sequence[intCell], focus *intCell) grid.Coord {
		return grid.Coord{coord[0] + 1}
	}
	got, coord, err := rule.Apply[intCell](rule.Custom, intCell{state: 5}, grid.Coord{2}, seqOf(), 2, moveRight)
	require.NoError(t, err)
	assert.Equal(t, intCell{state: 5}, got)
	assert.Equal(t, grid.Coord{3}, coord)
}
