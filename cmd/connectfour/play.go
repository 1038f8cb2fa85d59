package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connectfour/internal/platform/tui"
	"github.com/vovakirdan/connectfour/internal/variant"
)

var flagVariant string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hot-seat game",
	Long: `Start a game for two players sharing the keyboard.

Controls:
  Left/Right, h/l  - Move the cursor
  Enter/Space      - Drop a disc under the cursor
  1-9              - Drop a disc into that column
  N                - New game
  ?                - Toggle help
  Ctrl+S           - Save a text screenshot
  Esc/Q            - Quit

Examples:
  connectfour play
  connectfour play --variant mini`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", "", "Board variant (see 'connectfour list')")
}

func runPlay(_ *cobra.Command, _ []string) {
	variantID := cfg.Variant
	if flagVariant != "" {
		variantID = flagVariant
	}

	v, err := variant.Get(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'connectfour list' to see available boards.")
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()
	restore := redirectLogsToFile()

	runErr := tui.Run(tui.GameOptions{
		Variant:       v,
		Theme:         tui.ThemeFromConfig(cfg.Players),
		Store:         resultStore(store),
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
		Width:         width,
		Height:        height,
	})

	restore()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
