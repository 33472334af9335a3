// Package geom provides the pure index arithmetic that underlies a
// cellular-automata grid: periodic axis wrapping, neighborhood cardinality,
// diagonal membership tests, and the flat-index ↔ offset mapping used by
// both Moore and Von Neumann neighborhoods in rank 1, 2, and 3.
//
// Every function here is total and allocation-free except where it must
// return a slice of offsets; none of them touch a grid, a cell, or any
// mutable state. Keeping this arithmetic isolated from grid/neighborhood
// makes it independently testable against the closed-form invariants in
// the package's test files (periodicity closure, cardinality formulas,
// Moore/Von-Neumann set relationships).
//
// Complexity: all functions are O(1) except EnumerateOffsets, which is
// O(Cardinality(rank, radius, shape)).
package geom
