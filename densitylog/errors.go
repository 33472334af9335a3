package densitylog

import "errors"

// ErrMalformedLine indicates a log line contained a token that did not
// parse as a cell state integer.
var ErrMalformedLine = errors.New("densitylog: malformed line")

// ErrShortGeneration indicates the stream ended mid-generation: fewer data
// lines remained than the Scanner's linesPerGeneration requires.
var ErrShortGeneration = errors.New("densitylog: short generation")
