package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagDemoMistakeAt int
	flagDemoMaxRounds int
	flagDemoSpeed     float64
	flagDemoRecord    bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch a bot play",
	Long: `Run a game without a terminal UI. A bot waits for each presentation to
finish and repeats the sequence back, logging every score report.

The bot plays perfectly unless --mistake-at names a round, in which case it
gets the last signal of that round wrong and the game ends.

Examples:
  simon demo
  simon demo --mistake-at 4
  simon demo --max-rounds 30 --speed 4 --log-level debug
  simon demo --mistake-at 6 --record`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagDemoMistakeAt, "mistake-at", 0, "Round in which the bot makes a mistake (0 = never)")
	demoCmd.Flags().IntVar(&flagDemoMaxRounds, "max-rounds", 10, "Stop after this many rounds")
	demoCmd.Flags().Float64Var(&flagDemoSpeed, "speed", 1, "Speed multiplier for every delay")
	demoCmd.Flags().BoolVar(&flagDemoRecord, "record", false, "Save the finished game to the scores database")
}

// logListener reports engine notifications through a logger.
type logListener struct {
	logger *log.Logger
}

func (l logListener) ReportScore(score int) {
	l.logger.Info("score", "score", score)
}

func (l logListener) ReportGameOver(finalScore int) {
	l.logger.Info("game over", "score", finalScore)
}

func (l logListener) ReportNewHighScore(score int) {
	l.logger.Info("new high score", "score", score)
}

// logDisplay reports pad flashes at debug level.
type logDisplay struct {
	logger *log.Logger
}

func (d logDisplay) SetLit(sig simon.Signal, lit bool) {
	if lit {
		d.logger.Debug("flash", "pad", sig)
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if flagDemoSpeed <= 0 {
		return fmt.Errorf("--speed must be positive, got %v", flagDemoSpeed)
	}
	if flagDemoMaxRounds <= 0 {
		return fmt.Errorf("--max-rounds must be positive, got %d", flagDemoMaxRounds)
	}

	settings, preset, err := loadSettings()
	if err != nil {
		return err
	}
	settings = scaleSettings(settings, flagDemoSpeed)

	logger, err := newLogger(os.Stderr, "simon-demo")
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagDemoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening scores database: %w", err)
		}
		defer store.Close()
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagTick
	rc.Seed = flagSeed
	seed := rc.ResolveSeed()

	engine := simon.New(settings,
		simon.WithDisplay(logDisplay{logger: logger}),
		simon.WithListener(logListener{logger: logger}),
		simon.WithHighScores(storage.HighScores{Store: store}),
		simon.WithSeed(seed),
		simon.WithLogger(logger),
	)
	driver := simon.NewDriver(engine, rc.TickInterval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- driver.Run(ctx) }()

	logger.Info("demo started", "seed", seed, "preset", preset, "timing", settings.Timing)
	snap, playErr := playBot(ctx, driver, flagDemoMaxRounds, flagDemoMistakeAt, settings.Timing.Flash)
	if playErr == nil {
		// Read the final sequence before the driver stops
		var seq simon.Sequence
		if seq, playErr = driver.Sequence(ctx); playErr == nil && flagDemoRecord && snap.State == simon.StateGameOver {
			recordDemo(store, logger, snap, seq, string(preset), seed)
		}
	}

	cancel()
	if err := <-runErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if playErr != nil && !errors.Is(playErr, context.Canceled) {
		return playErr
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Final state: %s\n", snap.State)
	fmt.Fprintf(out, "Score: %d   Best: %d\n", snap.Score, snap.HighScore)
	if snap.NewRecord {
		fmt.Fprintln(out, "New high score!")
	}
	return nil
}

// playBot plays until the game ends or maxRounds rounds have been won.
func playBot(ctx context.Context, d *simon.Driver, maxRounds, mistakeAt int, pause time.Duration) (simon.Snapshot, error) {
	if err := d.Start(ctx); err != nil {
		return simon.Snapshot{}, err
	}

	for {
		snap, err := waitForTurn(ctx, d)
		if err != nil {
			return snap, err
		}
		if snap.State == simon.StateGameOver || snap.Score >= maxRounds {
			return snap, nil
		}

		seq, err := d.Sequence(ctx)
		if err != nil {
			return snap, err
		}
		for i, sig := range seq.Signals() {
			if seq.Len() == mistakeAt && i == seq.Len()-1 {
				sig = simon.Signal((int(sig) + 1) % len(simon.Alphabet()))
			}
			if err := d.Select(ctx, sig); err != nil {
				return snap, err
			}
			if err := sleepCtx(ctx, pause); err != nil {
				return snap, err
			}
		}

		// Let the engine leave AwaitingInput before polling again
		if err := waitWhile(ctx, d, simon.StateAwaitingInput); err != nil {
			return snap, err
		}
	}
}

// waitForTurn polls until the player may act or the game is over.
func waitForTurn(ctx context.Context, d *simon.Driver) (simon.Snapshot, error) {
	for {
		snap, err := d.Snapshot(ctx)
		if err != nil {
			return snap, err
		}
		if snap.State == simon.StateAwaitingInput || snap.State == simon.StateGameOver {
			return snap, nil
		}
		if err := sleepCtx(ctx, 10*time.Millisecond); err != nil {
			return snap, err
		}
	}
}

func waitWhile(ctx context.Context, d *simon.Driver, state simon.State) error {
	for {
		snap, err := d.Snapshot(ctx)
		if err != nil {
			return err
		}
		if snap.State != state {
			return nil
		}
		if err := sleepCtx(ctx, 10*time.Millisecond); err != nil {
			return err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// scaleSettings divides every delay by speed.
func scaleSettings(s simon.Settings, speed float64) simon.Settings {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) / speed)
	}
	s.Timing.Flash = scale(s.Timing.Flash)
	s.Timing.PreSequencePause = scale(s.Timing.PreSequencePause)
	s.Timing.InterSignalPause = scale(s.Timing.InterSignalPause)
	s.Settle = scale(s.Settle)
	s.InterRoundDelay = scale(s.InterRoundDelay)
	s.Difficulty.FlashStep = scale(s.Difficulty.FlashStep)
	s.Difficulty.FlashFloor = scale(s.Difficulty.FlashFloor)
	s.Difficulty.PreSequenceStep = scale(s.Difficulty.PreSequenceStep)
	s.Difficulty.PreSequenceFloor = scale(s.Difficulty.PreSequenceFloor)
	s.Difficulty.InterSignalStep = scale(s.Difficulty.InterSignalStep)
	s.Difficulty.InterSignalFloor = scale(s.Difficulty.InterSignalFloor)
	return s
}

func recordDemo(store *storage.Store, logger *log.Logger, snap simon.Snapshot, seq simon.Sequence, preset string, seed int64) {
	id, err := store.SaveGame(storage.GameRecord{
		SessionID: snap.SessionID,
		Score:     snap.Score,
		Sequence:  seq.String(),
		Preset:    preset,
		Seed:      seed,
		Player:    "demo-bot",
	})
	if err != nil {
		logger.Warn("could not save game", "error", err)
		return
	}
	logger.Info("game saved", "id", id)
}
