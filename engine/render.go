package engine

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// statePalette cycles a handful of terminal colors across state values so a
// colorized rendering stays readable for any num_states.
var statePalette = []lipgloss.Color{
	lipgloss.Color("15"), // white, state 0
	lipgloss.Color("9"),  // red
	lipgloss.Color("10"), // green
	lipgloss.Color("11"), // yellow
	lipgloss.Color("12"), // blue
	lipgloss.Color("13"), // magenta
}

// PrintGrid writes the canonical text rendering of the current generation
// to w: whitespace-separated state integers, one line per row for rank 2,
// and a "Printing i'th slice of Tensor" header per outer slice for rank 3.
// Fails with ErrCellsNull if no dimensions have been configured yet.
//
// Complexity: O(size).
func (e *Engine[T]) PrintGrid(w io.Writer) error {
	dims := e.g.Shape()
	if len(dims) == 0 {
		return ErrCellsNull
	}

	switch len(dims) {
	case 1:
		return e.printRow(w, nil, dims[0])
	case 2:
		return e.printPlane(w, nil, dims)
	case 3:
		for i := 0; i < dims[0]; i++ {
			if _, err := fmt.Fprintf(w, "Printing %d'th slice of Tensor\n", i); err != nil {
				return err
			}
			if err := e.printPlane(w, []int{i}, dims[1:]); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrCellsNull
	}
}

// printPlane renders a rank-2 slice at the given fixed leading axes.
func (e *Engine[T]) printPlane(w io.Writer, prefix []int, plane []int) error {
	for r := 0; r < plane[0]; r++ {
		if err := e.printRow(w, append(append([]int(nil), prefix...), r), plane[1]); err != nil {
			return err
		}
	}
	return nil
}

// printRow renders one line of cell states along the final axis, with
// coord holding every fixed leading index (nil for rank 1).
func (e *Engine[T]) printRow(w io.Writer, coord []int, width int) error {
	for c := 0; c < width; c++ {
		full := append(append([]int(nil), coord...), c)
		v, _ := e.g.Get(full)
		text := e.styleState(v.State())
		if c > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// styleState renders a state value, colorized through the palette when
// Colorize is enabled.
func (e *Engine[T]) styleState(state int) string {
	text := strconv.Itoa(state)
	if !e.colorize {
		return text
	}
	c := statePalette[state%len(statePalette)]
	return lipgloss.NewStyle().Foreground(c).Render(text)
}

// SetColorize toggles lipgloss-based colorization of PrintGrid output. The
// zero-value Engine renders plain whitespace-separated text; callers opt
// into color for interactive terminals.
func (e *Engine[T]) SetColorize(on bool) {
	e.colorize = on
}
