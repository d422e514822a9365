// simon is a terminal memory game: repeat a growing sequence of colors.
//
// Usage:
//
//	simon play              - Play in this terminal
//	simon serve             - Start SSH server for remote play
//	simon scores            - Show high scores and stats
//	simon demo              - Watch a bot play through the real-time driver
//	simon config            - Print the effective configuration
//
// Global flags:
//
//	--tick <rate>          - Frames per second (default: 60)
//	--seed <value>         - RNG seed for reproducible sequences
//	--db <path>            - Database path (default: ~/.simon/scores.db)
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

var (
	// Global flags
	flagTick       int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon - repeat the sequence in your terminal",
	Long: `Simon lights a growing sequence of colored pads.
Repeat it back without a mistake to score a round.
The pace quickens every few rounds.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores and recent games
  demo     - Watch a bot play
  config   - Print the effective configuration

Examples:
  simon play
  simon play --difficulty hard
  simon serve --ssh :2222
  simon scores --recent
  simon demo --mistake-at 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simon/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig reads the config file and applies --difficulty.
func loadConfig() (config.SimonConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SimonConfig{}, "", err
	}

	cfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		return config.SimonConfig{}, "", err
	}
	config.ApplySimonPreset(&cfg, preset)

	if preset == "" {
		preset = config.DifficultyNormal
	}
	return cfg, preset, nil
}

// loadSettings resolves the game pace from config and flags.
func loadSettings() (simon.Settings, config.DifficultyPreset, error) {
	cfg, preset, err := loadConfig()
	if err != nil {
		return simon.Settings{}, "", err
	}
	return simon.SettingsFromConfig(cfg), preset, nil
}
