// dla is a terminal simulator for diffusion limited aggregation: particles
// random-walk across a grid and freeze when they touch the growing cluster.
//
// Usage:
//
//	dla watch                - Watch a cluster grow interactively
//	dla run                  - Run a simulation headless
//	dla bench                - Benchmark the simulation core
//	dla history              - Show past runs and saved snapshots
//	dla serve                - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>    - Set render rate for the viewer (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.dla/runs.db)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dla/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dla",
	Short: "Grow diffusion limited aggregation clusters in your terminal",
	Long: `dla grows fractal clusters by diffusion limited aggregation: particles
spawn on a grid, wander randomly, and freeze the moment they touch the
cluster. Watch it live, run it headless, or serve it over SSH.

Available commands:
  watch    - Interactive viewer
  run      - Headless simulation
  bench    - Benchmark the core
  history  - Past runs and snapshots
  serve    - SSH server for remote viewing

Examples:
  dla watch
  dla watch --preset huge --layout ring
  dla run --particles 20000 --out run.dla
  dla bench --iterations 10
  dla history --stats
  dla serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Viewer render rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dla/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// addSimFlags registers the simulation flags shared by watch, run, and bench.
func addSimFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "Path to custom config YAML")
	f.String("preset", "", "Grid size preset: small, medium, large, huge")
	f.Int("width", 0, "Grid width in cells")
	f.Int("height", 0, "Grid height in cells")
	f.Int("particles", 0, "Number of particles to aggregate")
	f.Int("steps", 0, "Walk step budget per particle")
	f.String("layout", "", "Seed layout: center, bottom-edge, all-edges, four-dots, random-five, ring")
	f.Int("adjacency", 0, "Neighbor rule: 4 or 8")
	f.String("spawn", "", "Spawn policy: random, perimeter")
	f.Int("radius", -1, "Spawn exclusion radius around the center (0 = off)")
}

// resolveConfig loads the YAML config and applies preset and flag overrides.
// Explicit flags win over the preset, which wins over the file.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()

	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if preset, _ := f.GetString("preset"); preset != "" {
		config.ApplySizePreset(&cfg, config.SizePreset(preset))
	}

	if f.Changed("width") {
		cfg.Grid.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		cfg.Grid.Height, _ = f.GetInt("height")
	}
	if f.Changed("particles") {
		cfg.Run.TargetParticles, _ = f.GetInt("particles")
	}
	if f.Changed("steps") {
		cfg.Run.MaxWalkSteps, _ = f.GetInt("steps")
	}
	if f.Changed("layout") {
		cfg.Grid.Layout, _ = f.GetString("layout")
	}
	if f.Changed("adjacency") {
		cfg.Run.Adjacency, _ = f.GetInt("adjacency")
	}
	if f.Changed("spawn") {
		cfg.Run.SpawnPolicy, _ = f.GetString("spawn")
	}
	if f.Changed("radius") {
		cfg.Run.SpawnRadius, _ = f.GetInt("radius")
	}

	// Global seed flag wins; a zero seed means time-based
	if flagSeed != 0 {
		cfg.Run.Seed = flagSeed
	}
	if cfg.Run.Seed == 0 {
		cfg.Run.Seed = time.Now().UnixNano()
	}

	return cfg, nil
}
