package engine

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/lvlath-ca/geom"
	"github.com/katalvlaran/lvlath-ca/neighborhood"
	"github.com/katalvlaran/lvlath-ca/rule"
)

// titleCaser uses cases.NoLower so identifiers with internal capitals
// (neighborhood.CutOff) survive title-casing unchanged instead of being
// lowercased after the leading letter of each word.
var titleCaser = cases.Title(language.English, cases.NoLower)

// FormatRuleName renders a rule.Kind as a human-readable, title-cased label
// ("Majority", "Parity", "Custom"), used by DescribeConfig's diagnostic
// header instead of the deprecated strings.Title.
func FormatRuleName(k rule.Kind) string {
	return titleCaser.String(k.String())
}

// FormatBoundaryName renders a neighborhood.Boundary the same way.
func FormatBoundaryName(b neighborhood.Boundary) string {
	return titleCaser.String(b.String())
}

// FormatNeighborhoodName renders a geom.Shape the same way.
func FormatNeighborhoodName(s geom.Shape) string {
	return titleCaser.String(s.String())
}

// DescribeConfig writes a one-line, human-readable summary of the engine's
// current configuration ahead of a PrintGrid call — the diagnostic header
// cmd/ca-prompt prints before each rendered generation.
func (e *Engine[T]) DescribeConfig(w io.Writer) error {
	_, err := fmt.Fprintf(w, "step=%d shape=%v neighborhood=%s boundary=%s radius=%d rule=%s states=%d\n",
		e.stepsTaken, e.g.Shape(),
		FormatNeighborhoodName(e.neighborhoodShape),
		FormatBoundaryName(e.boundary),
		e.radius,
		FormatRuleName(e.ruleKind),
		e.numStates,
	)
	return err
}
