package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dla/internal/dla"
	"github.com/vovakirdan/tui-dla/internal/storage"
)

var (
	flagRunOut  string
	flagRunNoDB bool
)

// progressChunk is how many generations run between progress log lines.
const progressChunk = 1000

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation headless",
	Long: `Grow a full cluster without the viewer and record the result.

The run is added to the history database unless --no-db is given. With
--out the finished run is also written to a file that 'dla watch --load'
can open.

Examples:
  dla run
  dla run --preset huge --seed 7
  dla run --particles 20000 --out big.dla
  dla run --spawn perimeter --no-db`,
	RunE: runRun,
}

func init() {
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&flagRunOut, "out", "", "Write the finished run to this file")
	runCmd.Flags().BoolVar(&flagRunNoDB, "no-db", false, "Skip recording the run in the history database")
}

func runRun(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dla",
	})

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.Params()

	ctrl, err := dla.NewController(params)
	if err != nil {
		return err
	}

	logger.Info("starting run",
		"grid", params.Width*params.Height,
		"target", params.TargetParticles,
		"layout", params.Layout,
		"spawn", params.SpawnPolicy,
		"seed", params.Seed,
	)

	start := time.Now()
	for !ctrl.Done() {
		out := ctrl.TickN(progressChunk)
		s := ctrl.Stats()
		if out.Kind == dla.OutcomeGridFull {
			logger.Warn("grid filled before target", "placed", s.Placed, "target", s.Target)
			break
		}
		logger.Info("progress", "placed", s.Placed, "target", s.Target, "timeouts", s.Timeouts)
	}
	elapsed := time.Since(start)

	s := ctrl.Stats()
	logger.Info("run finished",
		"placed", s.Placed,
		"generations", s.Generations,
		"timeouts", s.Timeouts,
		"walk_steps", s.WalkSteps,
		"elapsed", elapsed.Round(time.Millisecond),
	)

	if !flagRunNoDB {
		store, storeErr := storage.Open(flagDBPath)
		if storeErr != nil {
			logger.Warn("could not open runs database", "error", storeErr)
		} else {
			defer store.Close()
			_, saveErr := store.SaveRun(storage.RunRecord{
				Width:       params.Width,
				Height:      params.Height,
				Layout:      string(params.Layout),
				Adjacency:   int(params.Adjacency),
				SpawnPolicy: string(params.SpawnPolicy),
				Seed:        params.Seed,
				Target:      params.TargetParticles,
				Placed:      s.Placed,
				Generations: s.Generations,
				Timeouts:    s.Timeouts,
				WalkSteps:   int64(s.WalkSteps),
				DurationMs:  elapsed.Milliseconds(),
				Completed:   s.Placed >= s.Target,
			})
			if saveErr != nil {
				logger.Warn("could not record run", "error", saveErr)
			}
		}
	}

	if flagRunOut != "" {
		if err := ctrl.SaveFile(flagRunOut); err != nil {
			return err
		}
		logger.Info("run saved", "path", flagRunOut)
	}

	return nil
}
