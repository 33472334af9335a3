package engine

import (
	"context"
	"runtime"
	"sync"

	"github.com/katalvlaran/lvlath-ca/grid"
	"github.com/katalvlaran/lvlath-ca/neighborhood"
	"github.com/katalvlaran/lvlath-ca/rule"
)

// Step advances the simulation by exactly one generation: every cell's
// neighborhood is read from the current buffer, the configured rule is
// applied, and the result is written into the next buffer; once every
// cell has been visited, current and next are swapped atomically for all
// observers (grid.Grid.Swap).
//
// custom is only consulted when the engine's rule kind is rule.Custom; it
// is ignored otherwise and may be nil.
//
// Step fails with ErrInvalidState if the engine has not yet been seeded
// (phase must be Seeded or Advancing), or ErrCustomRuleMissing if the rule
// kind is rule.Custom and custom is nil. On any per-cell rule error the
// whole step is abandoned and the engine's phase and buffers are left
// exactly as they were before the call.
//
// Work is partitioned by flat index across runtime.GOMAXPROCS(0) workers.
// Workers never share a destination coordinate except where a Custom rule
// deliberately relocates a cell into another worker's range; such
// collisions are last-writer-wins and are the caller's responsibility to
// avoid if determinism matters.
func (e *Engine[T]) Step(custom rule.CustomFunc[T]) error {
	if e.phase != Seeded && e.phase != Advancing {
		return ErrInvalidState
	}
	if e.ruleKind == rule.Custom && custom == nil {
		return ErrCustomRuleMissing
	}

	e.g.ResetNext()

	total := e.g.Len()
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (total + workers - 1) / workers

	cfg := neighborhood.Config{
		Shape:    e.neighborhoodShape,
		Boundary: e.boundary,
		Radius:   e.radius,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	for start := 0; start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for flat := start; flat < end; flat++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				coord := e.g.Coordinate(flat)
				focus, _ := e.g.Get(coord)

				nbrs, frozen := neighborhood.View(&e.g, coord, cfg)
				if frozen {
					_ = e.g.SetNext(coord, focus)
					continue
				}

				newVal, newCoord, err := rule.Apply(e.ruleKind, focus, coord, nbrs, e.numStates, custom)
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					return
				}

				if newVal != grid.Zero[T]() {
					_ = e.g.SetNext(newCoord, newVal)
				}
			}
		}(start, end)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	e.g.Swap()
	e.stepsTaken++
	e.phase = Advancing

	return nil
}
