// connectfour is a two-player Connect Four game for the terminal.
//
// Usage:
//
//	connectfour list              - List available boards
//	connectfour play              - Play a hot-seat game
//	connectfour menu              - Pick a board interactively
//	connectfour replay <moves>    - Replay a move sequence and print the board
//	connectfour results           - Show recorded games and statistics
//	connectfour serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.connectfour/config.yaml)
//	--db <path>         - Results database (default: ~/.connectfour/results.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectfour/internal/config"
	"github.com/vovakirdan/connectfour/internal/platform/tui"
	"github.com/vovakirdan/connectfour/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connectfour",
	Short: "Connect Four in your terminal",
	Long: `Connect Four for two players sharing one keyboard, locally or over SSH.

Available commands:
  list     - Show the available boards
  play     - Play a game directly
  menu     - Interactive board picker
  replay   - Replay a move sequence
  results  - Show recorded games
  serve    - Start SSH server for remote play

Examples:
  connectfour play
  connectfour play --variant mini
  connectfour replay 3232323
  connectfour serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration and creates the logger.
// Precedence: flags, environment, config file, defaults.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&loaded); err != nil {
		return err
	}
	if flagDBPath != "" {
		loaded.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "connectfour",
	})
	level, _ := log.ParseLevel(cfg.Log.Level)
	logger.SetLevel(level)
	return nil
}

// openStore opens the results database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("results will not be recorded", "path", cfg.Storage.Path, "err", err)
		return nil
	}
	return store
}

// resultStore avoids handing a typed nil to the TUI.
func resultStore(store *storage.Store) tui.ResultStore {
	if store == nil {
		return nil
	}
	return store
}

// redirectLogsToFile sends log output to ~/.connectfour/connectfour.log while
// the alternate screen is active. The returned func restores stderr.
func redirectLogsToFile() func() {
	dir := config.Dir()
	if dir == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }
	}

	f, err := os.OpenFile(filepath.Join(dir, "connectfour.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// screenshotDir is where ctrl+s captures go.
func screenshotDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "screenshots")
}
