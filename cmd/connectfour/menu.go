package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connectfour/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the selected board.
Tab opens the recorded results. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Play board
  Tab          - Results
  Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	store := openStore()
	restore := redirectLogsToFile()

	err := tui.RunSession(tui.SessionOptions{
		Theme:          tui.ThemeFromConfig(cfg.Players),
		Store:          resultStore(store),
		Logger:         logger,
		DefaultVariant: cfg.Variant,
		ScreenshotDir:  screenshotDir(),
		Width:          width,
		Height:         height,
	})

	restore()
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
