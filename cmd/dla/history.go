package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dla/internal/storage"
)

var (
	flagHistoryLimit     int
	flagHistoryLargest   bool
	flagHistoryStats     bool
	flagHistorySnapshots bool
	flagHistoryClear     bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past runs and saved snapshots",
	Long: `Display recorded runs from the history database.

Examples:
  dla history
  dla history --largest --limit 5
  dla history --stats
  dla history --snapshots
  dla history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryLargest, "largest", false, "Order by particles placed instead of date")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show aggregate statistics")
	historyCmd.Flags().BoolVar(&flagHistorySnapshots, "snapshots", false, "List saved snapshots instead of runs")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole run history")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")

	case flagHistorySnapshots:
		showSnapshots(store)

	case flagHistoryStats:
		showStats(store)

	default:
		showRuns(store)
	}
}

func showRuns(store *storage.Store) {
	var runs []storage.RunRecord
	var err error
	if flagHistoryLargest {
		runs, err = store.LargestRuns(flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dla run' or finish a run in 'dla watch' to record one.")
		return
	}

	fmt.Printf("  %-9s  %-10s  %-11s  %-9s  %-9s  %-8s  %s\n",
		"Grid", "Layout", "Spawn", "Particles", "Time", "Done", "Date")
	fmt.Printf("  %-9s  %-10s  %-11s  %-9s  %-9s  %-8s  %s\n",
		"----", "------", "-----", "---------", "----", "----", "----")

	for _, r := range runs {
		done := "no"
		if r.Completed {
			done = "yes"
		}
		fmt.Printf("  %-9s  %-10s  %-11s  %-9d  %-9s  %-8s  %s\n",
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Layout,
			r.SpawnPolicy,
			r.Placed,
			fmt.Sprintf("%dms", r.DurationMs),
			done,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

func showStats(store *storage.Store) {
	stats, err := store.GetRunStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run history")
	fmt.Println()
	fmt.Printf("  Runs:            %d\n", stats.RunCount)
	fmt.Printf("  Completed:       %d\n", stats.CompletedCount)
	fmt.Printf("  Total particles: %d\n", stats.TotalParticles)
	fmt.Printf("  Total steps:     %d\n", stats.TotalWalkSteps)
	if !stats.LastRun.IsZero() {
		fmt.Printf("  Last run:        %s\n", stats.LastRun.Format("2006-01-02 15:04"))
	}
}

func showSnapshots(store *storage.Store) {
	infos, err := store.ListSnapshots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving snapshots: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("No snapshots saved yet.")
		fmt.Println()
		fmt.Println("Press S in 'dla watch' to save one.")
		return
	}

	fmt.Printf("  %-18s  %-10s  %s\n", "Name", "Size", "Date")
	fmt.Printf("  %-18s  %-10s  %s\n", "----", "----", "----")
	for _, info := range infos {
		fmt.Printf("  %-18s  %-10d  %s\n",
			info.Name, info.Size, info.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Resume one with 'dla watch --snapshot <name>'.")
}
