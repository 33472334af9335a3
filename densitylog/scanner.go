package densitylog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Density maps a cell state to the number of cells observed in that state
// within one generation.
type Density map[int]int

// Scanner reads consecutive engine.PrintGrid generations from a stream and
// reduces each to a Density histogram, one generation at a time.
//
// The linesPerGeneration given to NewScanner is the number of data rows one
// call to PrintGrid produces for the grid's rank: 1 for rank 1, D1 for
// rank 2, D1*D2 for rank 3. Lines beginning with "Printing " are always
// skipped as slice headers regardless of rank and are not counted, so the
// rank-3 count excludes the D1 header lines.
type Scanner struct {
	sc   *bufio.Scanner
	rows int
}

// NewScanner returns a Scanner that groups linesPerGeneration data rows
// (post header-skipping) into each Density.
func NewScanner(r io.Reader, linesPerGeneration int) *Scanner {
	return &Scanner{
		sc:   bufio.NewScanner(r),
		rows: linesPerGeneration,
	}
}

// Next reads and tallies the next generation. ok is false once the
// underlying reader is exhausted with no partial generation pending.
//
// Complexity: O(size) per generation.
func (s *Scanner) Next() (Density, bool, error) {
	d := make(Density)
	rowsSeen := 0

	for rowsSeen < s.rows {
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return nil, false, err
			}
			if rowsSeen == 0 {
				return nil, false, nil
			}
			return nil, false, fmt.Errorf("%w: got %d of %d rows", ErrShortGeneration, rowsSeen, s.rows)
		}

		line := s.sc.Text()
		if strings.HasPrefix(line, "Printing ") {
			continue
		}

		for _, tok := range strings.Fields(line) {
			state, err := strconv.Atoi(tok)
			if err != nil {
				return nil, false, fmt.Errorf("%w: %q", ErrMalformedLine, tok)
			}
			d[state]++
		}
		rowsSeen++
	}

	return d, true, nil
}
