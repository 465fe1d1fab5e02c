package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/highjump/internal/games/highjump"
	"github.com/vovakirdan/highjump/internal/registry"
	"github.com/vovakirdan/highjump/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs",
	Long: `Display the best runs and play statistics. The mode defaults to
highjump.

Examples:
  highjump scores
  highjump scores --limit 25
  highjump scores --all
  highjump scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show stats for every mode with recorded runs")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := highjump.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	info, ok := registry.Info(gameID)
	if !ok {
		fatal("unknown mode %q (run 'highjump list')", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
	case flagScoresAll:
		printAllStats(store)
	default:
		printTopRuns(store, info)
	}
}

func printTopRuns(store *storage.Store, info registry.GameInfo) {
	runs, err := store.TopRuns(info.ID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'highjump play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-10s  %s\n", "Rank", "Score", "Time", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-10s  %s\n", "----", "-----", "----", "----------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-7s  %-10s  %s\n",
			i+1, r.Score, r.Duration.Round(time.Second).String(), r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(info.ID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(info.ID); err == nil {
		fmt.Printf("Games: %d  Average: %.0f  Longest run: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LongestRun.Round(time.Second))
	}
}

func printAllStats(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fatal("%v", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-18s  %-6s  %-8s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	for _, id := range ids {
		s := all[id]
		last := "-"
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-18s  %-6d  %-8d  %-8.0f  %s\n", id, s.GamesCount, s.HighScore, s.AvgScore, last)
	}
}
