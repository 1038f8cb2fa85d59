package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectfour/internal/storage"
	"github.com/vovakirdan/connectfour/internal/variant"
)

var (
	flagResultsVariant string
	flagResultsLimit   int
	flagResultsClear   bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded games and statistics",
	Long: `Display statistics per board and the most recent finished games.

Examples:
  connectfour results
  connectfour results --variant mini --limit 20
  connectfour results --variant mini --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&flagResultsVariant, "variant", "", "Only show this board variant")
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of recent games to show")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete recorded games (all, or those of --variant)")
}

func runResults(_ *cobra.Command, _ []string) {
	if flagResultsVariant != "" && !variant.Exists(flagResultsVariant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagResultsVariant)
		fmt.Fprintln(os.Stderr, "Run 'connectfour list' to see available boards.")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResultsClear {
		if err := store.ClearResults(flagResultsVariant); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		logger.Info("results cleared", "variant", flagResultsVariant)
		return
	}

	var stats []storage.Stats
	var results []storage.Result
	if flagResultsVariant != "" {
		s, statsErr := store.Stats(flagResultsVariant)
		if statsErr == nil {
			stats = []storage.Stats{*s}
		}
		err = statsErr
		if err == nil {
			results, err = store.ResultsByVariant(flagResultsVariant, flagResultsLimit)
		}
	} else {
		stats, err = store.AllStats()
		if err == nil {
			results, err = store.RecentResults(flagResultsLimit)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	printStats(stats)
	fmt.Println()
	printResults(results)
}

func printStats(stats []storage.Stats) {
	fmt.Println("Statistics")
	fmt.Println()

	if len(stats) == 0 || (len(stats) == 1 && stats[0].Games == 0) {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %5s  %5s  %5s  %5s  %9s\n", "Board", "Games", "P1", "P2", "Draws", "Avg moves")
	fmt.Printf("  %-8s  %5s  %5s  %5s  %5s  %9s\n", "-----", "-----", "--", "--", "-----", "---------")
	for _, s := range stats {
		fmt.Printf("  %-8s  %5d  %5d  %5d  %5d  %9.1f\n",
			s.Variant, s.Games, s.PlayerOneWins, s.PlayerTwoWins, s.Draws, s.AvgMoves)
	}
}

func printResults(results []storage.Result) {
	fmt.Println("Recent games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'connectfour play' and finish a game to see it here!")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-16s  %5s  %s\n", "Date", "Board", "Winner", "Moves", "Sequence")
	fmt.Printf("  %-16s  %-8s  %-16s  %5s  %s\n", "----", "-----", "------", "-----", "--------")
	for _, r := range results {
		winner := r.Winner()
		if winner == "" {
			winner = "draw"
		}
		fmt.Printf("  %-16s  %-8s  %-16s  %5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Variant, winner, r.Moves, r.Sequence)
	}
}
