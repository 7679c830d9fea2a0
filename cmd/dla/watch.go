package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dla/internal/dla"
	"github.com/vovakirdan/tui-dla/internal/platform/tui"
	"github.com/vovakirdan/tui-dla/internal/storage"
)

var (
	flagWatchTheme    string
	flagWatchGen      int
	flagWatchLoad     string
	flagWatchSnapshot string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a cluster grow interactively",
	Long: `Open the interactive viewer and watch particles aggregate in real time.

Controls:
  Space/P    - Pause/resume
  R          - Restart with a fresh seed
  +/-        - Run more/fewer generations per frame
  T          - Cycle color themes
  S          - Save a snapshot to the database
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Examples:
  dla watch
  dla watch --preset large --layout all-edges
  dla watch --spawn perimeter --adjacency 4
  dla watch --load run.dla
  dla watch --snapshot 20260828_193001`,
	RunE: runWatch,
}

func init() {
	addSimFlags(watchCmd)
	watchCmd.Flags().StringVar(&flagWatchTheme, "theme", "", "Color theme (seafoam, lemon, forest, candy, christmas, creamsicle, vibrant)")
	watchCmd.Flags().IntVar(&flagWatchGen, "gen", 0, "Generations per frame")
	watchCmd.Flags().StringVar(&flagWatchLoad, "load", "", "Resume a run saved with 'dla run --out'")
	watchCmd.Flags().StringVar(&flagWatchSnapshot, "snapshot", "", "Resume a snapshot saved from the viewer")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// The viewer clips to the terminal; mention it for oversized grids
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if cfg.Grid.Width > w || cfg.Grid.Height > h-2 {
			fmt.Fprintf(os.Stderr,
				"Note: %dx%d grid exceeds the %dx%d terminal; the view shows the top-left corner. Try --preset small.\n",
				cfg.Grid.Width, cfg.Grid.Height, w, h)
		}
	}

	// Open run storage; the viewer works without it
	store, storeErr := storage.Open(flagDBPath)
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", storeErr)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctrl, err := resumeOrStart(cfg.Params(), store)
	if err != nil {
		return err
	}

	opts := tui.Options{
		FPS:        cfg.Display.FPS,
		GenPerTick: cfg.Display.GenerationsPerTick,
		Theme:      cfg.Display.Theme,
	}
	if cmd.Flags().Changed("fps") {
		opts.FPS = flagFPS
	}
	if flagWatchGen > 0 {
		opts.GenPerTick = flagWatchGen
	}
	if flagWatchTheme != "" {
		opts.Theme = flagWatchTheme
	}

	return tui.Run(ctrl, store, opts)
}

// resumeOrStart builds the controller: from a save file, from a stored
// snapshot, or fresh from the parameters.
func resumeOrStart(params dla.Params, store *storage.Store) (*dla.Controller, error) {
	if flagWatchLoad != "" {
		return dla.LoadFile(flagWatchLoad)
	}

	if flagWatchSnapshot != "" {
		if store == nil {
			return nil, fmt.Errorf("cannot load snapshot %q: no database open", flagWatchSnapshot)
		}
		data, err := store.LoadSnapshot(flagWatchSnapshot)
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, fmt.Errorf("no snapshot named %q; run 'dla history --snapshots'", flagWatchSnapshot)
		}
		return dla.Load(bytes.NewReader(data))
	}

	return dla.NewController(params)
}
