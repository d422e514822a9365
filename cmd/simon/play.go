package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Simon",
	Long: `Start a Simon board in this terminal.

Controls:
  1 2 / U I     - Green, Red
  3 4 / J K     - Yellow, Blue
  Enter/Space   - Start a game
  R             - Restart
  Tab           - Scores (between games)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower opening pace, quickens as you score
  normal - Default pace, quickens every 3 rounds
  hard   - Starts as if 9 rounds were already won
  fixed  - The pace never changes

Examples:
  simon play
  simon play --difficulty easy
  simon play --config ./my-simon.yaml
  simon play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	settings, preset, err := loadSettings()
	if err != nil {
		return err
	}

	// Logs would draw over the alt screen, so they only go to --log-file
	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagTick,
		Seed:     flagSeed,
		Preset:   string(preset),
		Player:   currentUser(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(settings, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// playLogger opens --log-file, or discards logs when it is unset.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "simon")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// currentUser returns the login name recorded with each game.
func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
