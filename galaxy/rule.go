package galaxy

import (
	"github.com/katalvlaran/lvlath-ca/geom"
	"github.com/katalvlaran/lvlath-ca/grid"
	"github.com/katalvlaran/lvlath-ca/neighborhood"
)

// Rule is a rule.CustomFunc[Particle]: an occupied cell drifts one step
// toward its most massive neighbor, empty cells never move. It assumes the
// engine is configured for Moore neighborhoods at radius 1 — the offsets
// it walks are geom.EnumerateOffsets(rank, 1, geom.Moore), in the same
// canonical order neighborhood.View emits values in.
//
// This is demonstration code, not a physically accurate integrator: there
// is no inverse-square law, no shared-mass conservation across a step, and
// two bodies drifting into the same destination collide last-write-wins,
// exactly as the engine's motion convention allows.
func Rule(coord grid.Coord, nbrs neighborhood.Sequence[Particle], focus *Particle) grid.Coord {
	if focus.state == 0 {
		return coord
	}

	rank := len(coord)
	offsets := geom.EnumerateOffsets(rank, 1, geom.Moore)

	bestIdx := -1
	bestMass := focus.mass
	for i, n := range nbrs {
		if n.state != 0 && n.mass > bestMass {
			bestMass = n.mass
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return coord
	}

	dest := coord.Clone()
	for i, off := range offsets[bestIdx] {
		dest[i] += off
	}
	return dest
}
