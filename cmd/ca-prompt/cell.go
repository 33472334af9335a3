package main

// caCell is a plain cell type: state only, no payload. It satisfies
// grid.Cell. The simulation this command runs uses galaxy.Particle, not
// caCell.
type caCell struct{ state int }

func (c caCell) State() int { return c.state }

func (c caCell) WithState(state int) caCell { return caCell{state: state} }
