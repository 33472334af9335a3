// errors.go — sentinel errors for the grid package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is, never string comparison.
//   - Sentinels are never reworded at the definition site; call sites
//     attach context with fmt.Errorf("...: %w", err).
package grid

import "errors"

// ErrAlreadyInitialized indicates Allocate was called on a Grid that
// already owns a pair of buffers. Dimensions may be set exactly once.
var ErrAlreadyInitialized = errors.New("grid: already initialized")

// ErrAllocationFailed indicates buffer allocation could not be completed
// (e.g. requested dimensions overflow a representable flat length).
var ErrAllocationFailed = errors.New("grid: allocation failed")

// ErrInvalidRank indicates a dims slice whose length is not 1, 2, or 3.
var ErrInvalidRank = errors.New("grid: rank must be 1, 2, or 3")

// ErrInvalidDimension indicates a non-positive axis length.
var ErrInvalidDimension = errors.New("grid: dimension must be >= 1")

// ErrCoordOutOfBounds indicates a coordinate outside the grid's shape.
var ErrCoordOutOfBounds = errors.New("grid: coordinate out of bounds")
