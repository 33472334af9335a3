// Package engine is the public facade for the cellular-automata kernel: a
// configuration object plus the operations spec'd for it — dimension
// setup, boundary setup, rule setup, initial seeding, stepping one
// generation, and text rendering.
//
// The facade is a state machine:
//
//	Unconfigured -> Shaped (SetDimensions*) -> Seeded (InitCondition) -> Advancing (Step)
//
// Configuration setters other than the dimension setters may be called in
// any phase; every setter validates its arguments before touching the
// receiver, so a rejected call leaves engine state exactly as it was.
//
// Package engine also holds the Stepper: the per-generation algorithm that
// drives neighborhood.View and rule.Apply over every cell and commits the
// result with grid.Grid.Swap. A step partitions the flat cell index range
// into contiguous chunks across a worker pool; within a step there is no observable order among per-cell
// rule applications, but generation g is always fully committed before any
// observation of generation g+1.
package engine
