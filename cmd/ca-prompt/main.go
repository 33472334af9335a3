// Command ca-prompt is an interactive client of package engine: it collects
// the grid dimensions, a boundary radius, a seeding density, a body mass
// range, a time step, and a step count, then drives a galaxy.Rule
// simulation and prints each generation.
//
// Every input may be supplied as a flag; any flag left at its zero value is
// instead collected from stdin via a prompt, so `ca-prompt` with no flags
// runs as a plain interactive prompt, and
// `ca-prompt --d1=10 --d2=10 --d3=10 ...` behaves like a scriptable batch
// run.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-ca/engine"
	"github.com/katalvlaran/lvlath-ca/galaxy"
	"github.com/katalvlaran/lvlath-ca/grid"
	"github.com/katalvlaran/lvlath-ca/neighborhood"
	"github.com/katalvlaran/lvlath-ca/rule"
)

type runConfig struct {
	d1, d2, d3 int
	massMin    float64
	massMax    float64
	density    float64
	radius     int
	timeStep   float64
	steps      int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin *os.File, stdout *os.File) int {
	var cfg runConfig

	root := &cobra.Command{
		Use:           "ca-prompt",
		Short:         "Run a galaxy-flavored cellular-automata simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reader := bufio.NewReader(stdin)
			promptMissing(&cfg, reader, stdout)
			return simulate(cfg, stdout, isatty.IsTerminal(stdout.Fd()))
		},
	}

	flags := root.Flags()
	flags.IntVar(&cfg.d1, "d1", 0, "first axis size (>=3)")
	flags.IntVar(&cfg.d2, "d2", 0, "second axis size (>=3)")
	flags.IntVar(&cfg.d3, "d3", 0, "third axis size (>=3)")
	flags.Float64Var(&cfg.massMin, "mass-min", 0, "minimum body mass (>=1)")
	flags.Float64Var(&cfg.massMax, "mass-max", 0, "maximum body mass (>mass-min)")
	flags.Float64Var(&cfg.density, "density", 0, "seeding density in (0,1]")
	flags.IntVar(&cfg.radius, "radius", 0, "boundary radius (>=1)")
	flags.Float64Var(&cfg.timeStep, "dt", 0, "time step (>=0.1)")
	flags.IntVar(&cfg.steps, "steps", 0, "number of generations to run (>0)")

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stdout, "error:", err)
		return -1
	}
	return 0
}

func promptMissing(cfg *runConfig, r *bufio.Reader, w *os.File) {
	askInt(&cfg.d1, "first axis size", r, w)
	askInt(&cfg.d2, "second axis size", r, w)
	askInt(&cfg.d3, "third axis size", r, w)
	askFloat(&cfg.massMin, "minimum mass", r, w)
	askFloat(&cfg.massMax, "maximum mass", r, w)
	askFloat(&cfg.density, "seeding density", r, w)
	askInt(&cfg.radius, "boundary radius", r, w)
	askFloat(&cfg.timeStep, "time step", r, w)
	askInt(&cfg.steps, "step count", r, w)
}

func askInt(dst *int, label string, r *bufio.Reader, w *os.File) {
	if *dst != 0 {
		return
	}
	fmt.Fprintf(w, "%s: ", label)
	line, _ := r.ReadString('\n')
	fmt.Sscanf(line, "%d", dst)
}

func askFloat(dst *float64, label string, r *bufio.Reader, w *os.File) {
	if *dst != 0 {
		return
	}
	fmt.Fprintf(w, "%s: ", label)
	line, _ := r.ReadString('\n')
	fmt.Sscanf(line, "%f", dst)
}

func simulate(cfg runConfig, w io.Writer, colorize bool) error {
	if cfg.d1 < 3 || cfg.d2 < 3 || cfg.d3 < 3 {
		return fmt.Errorf("axis sizes must each be >= 3")
	}
	if cfg.massMin < 1 || cfg.massMax <= cfg.massMin {
		return fmt.Errorf("mass range invalid: min >= 1, max > min required")
	}
	if cfg.density <= 0 || cfg.density > 1 {
		return fmt.Errorf("density must be in (0, 1]")
	}
	if cfg.timeStep < 0.1 {
		return fmt.Errorf("time step must be >= 0.1")
	}
	if cfg.steps <= 0 {
		return fmt.Errorf("step count must be > 0")
	}

	slog.Info("starting simulation", "d1", cfg.d1, "d2", cfg.d2, "d3", cfg.d3,
		"density", cfg.density, "radius", cfg.radius, "steps", cfg.steps)

	e := engine.New[galaxy.Particle]()
	if err := e.SetBoundary(neighborhood.Periodic, cfg.radius); err != nil {
		return reportEngineError(w, err)
	}
	e.SetRule(rule.Custom)

	if err := e.SetDimensions3D(cfg.d1, cfg.d2, cfg.d3, galaxy.Particle{}); err != nil {
		return reportEngineError(w, err)
	}
	if err := e.InitCondition(1, cfg.density); err != nil {
		return reportEngineError(w, err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < cfg.d1; i++ {
		for j := 0; j < cfg.d2; j++ {
			for k := 0; k < cfg.d3; k++ {
				coord := grid.Coord{i, j, k}
				cell, _ := e.Cell(coord)
				if cell.State() == 0 {
					continue
				}
				mass := cfg.massMin + rng.Float64()*(cfg.massMax-cfg.massMin)
				_ = e.SetCell(coord, galaxy.NewBody(mass))
			}
		}
	}

	e.SetColorize(colorize)

	for step := 0; step < cfg.steps; step++ {
		if err := e.Step(galaxy.Rule); err != nil {
			return reportEngineError(w, err)
		}
		slog.Debug("step committed", "step", step+1, "phase", e.Phase().String())
		if err := e.DescribeConfig(w); err != nil {
			return err
		}
		if err := e.PrintGrid(w); err != nil {
			return err
		}
	}

	slog.Info("simulation finished", "steps_taken", e.StepsTaken())
	return nil
}

func reportEngineError(w io.Writer, err error) error {
	code := engine.CodeFor(err)
	slog.Error("engine error", "code", int(code), "err", err)
	fmt.Fprintf(w, "engine error %d: %v\n", -int(code), err)
	return err
}
