package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dla/internal/dla"
)

var flagBenchIterations int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the simulation core",
	Long: `Grow the configured cluster several times and report timings.

Each iteration uses a different seed so the walk lengths vary the way
they would across real runs.

Examples:
  dla bench
  dla bench --iterations 10 --preset small
  dla bench --adjacency 4 --spawn perimeter`,
	RunE: runBench,
}

func init() {
	addSimFlags(benchCmd)
	benchCmd.Flags().IntVar(&flagBenchIterations, "iterations", 5, "Number of runs to time")
}

func runBench(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.Params()

	fmt.Printf("Benchmark: %dx%d grid, %d particles, %s layout, %s spawn, adjacency %d\n",
		params.Width, params.Height, params.TargetParticles,
		params.Layout, params.SpawnPolicy, params.Adjacency)
	fmt.Println()
	fmt.Printf("  %-4s  %-12s  %-12s  %-14s  %s\n", "Run", "Elapsed", "Particles", "Walk steps", "Steps/sec")
	fmt.Printf("  %-4s  %-12s  %-12s  %-14s  %s\n", "---", "-------", "---------", "----------", "---------")

	var totalElapsed time.Duration
	var totalSteps uint64

	for i := 0; i < flagBenchIterations; i++ {
		p := params
		p.Seed = params.Seed + int64(i)

		ctrl, err := dla.NewController(p)
		if err != nil {
			return err
		}

		start := time.Now()
		for !ctrl.Done() {
			if out := ctrl.Tick(); out.Kind == dla.OutcomeGridFull {
				break
			}
		}
		elapsed := time.Since(start)

		s := ctrl.Stats()
		totalElapsed += elapsed
		totalSteps += s.WalkSteps

		fmt.Printf("  %-4d  %-12s  %-12d  %-14d  %.0f\n",
			i+1, elapsed.Round(time.Millisecond), s.Placed, s.WalkSteps, stepsPerSec(s.WalkSteps, elapsed))
	}

	fmt.Println()
	fmt.Printf("Average: %s per run, %.0f walker steps/sec\n",
		(totalElapsed / time.Duration(flagBenchIterations)).Round(time.Millisecond),
		stepsPerSec(totalSteps, totalElapsed))

	return nil
}

func stepsPerSec(steps uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(steps) / elapsed.Seconds()
}
