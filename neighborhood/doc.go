// Package neighborhood builds the ordered, read-only sequence of neighbor
// values around a focus cell, for a configured shape (Moore/Von Neumann)
// and boundary policy (Periodic/Walled/CutOff) at a given radius.
//
// A View never owns cells: it borrows them from a grid.Grid's current
// buffer. Its emission order always follows geom.EnumerateOffsets for the
// same (rank, radius, shape); when no neighbor is dropped, a
// rule.CustomFunc can treat position i in the sequence as neighbor-offset
// geom.EnumerateOffsets(...)[i]. Neighbors dropped by CutOff or Walled
// shorten the sequence and shift later positions.
//
// Complexity: View is O(Cardinality(rank, radius, shape)) time and space.
package neighborhood
