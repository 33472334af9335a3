// Package galaxy is an example Custom-rule client of package engine: a toy
// mass/velocity N-body-flavored cellular automaton where a live cell drifts
// toward its densest neighbor. It is not part of the simulation kernel —
// it exists to exercise rule.CustomFunc and prove out the engine's motion
// write convention against a non-trivial per-cell state.
package galaxy
