package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectfour/internal/connectfour"
	"github.com/vovakirdan/connectfour/internal/variant"
)

var flagReplayVariant string

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Replay a move sequence and print the board",
	Long: `Apply a sequence of 0-based column indices to an empty board and
print the resulting position.

Moves are either a compact digit string, one move per character, or
integers separated by commas or spaces. Replay stops at the first
rejected move.

Examples:
  connectfour replay 3232323
  connectfour replay "3, 2, 3" --variant large`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayVariant, "variant", "", "Board variant (see 'connectfour list')")
}

func runReplay(_ *cobra.Command, args []string) {
	variantID := cfg.Variant
	if flagReplayVariant != "" {
		variantID = flagReplayVariant
	}

	v, err := variant.Get(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	moves, err := connectfour.ParseMoves(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board := v.NewBoard()
	replayErr := connectfour.Replay(board, moves)

	fmt.Println(board.Snapshot())
	fmt.Println()
	fmt.Printf("Status: %s\n", board.Status())
	fmt.Printf("Moves made: %d\n", board.MovesMade())
	if !board.Status().IsOver() {
		fmt.Printf("Next: %s\n", board.CurrentPlayer())
	}

	if replayErr != nil {
		logger.Debug("replay stopped", "variant", v.ID, "err", replayErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", replayErr)
		os.Exit(1)
	}
}
