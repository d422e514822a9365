package simon

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-simon/internal/config"
)

// Timing holds the durations that pace one presentation of the sequence.
type Timing struct {
	Flash            time.Duration // How long a pad stays lit
	PreSequencePause time.Duration // Pause before the first signal
	InterSignalPause time.Duration // Pause after each signal's settle gap
}

// String formats the timing in milliseconds.
func (t Timing) String() string {
	return fmt.Sprintf("flash=%dms pre=%dms gap=%dms",
		t.Flash.Milliseconds(), t.PreSequencePause.Milliseconds(), t.InterSignalPause.Milliseconds())
}

// DefaultTiming returns the timing every game starts with.
func DefaultTiming() Timing {
	return Timing{
		Flash:            400 * time.Millisecond,
		PreSequencePause: 700 * time.Millisecond,
		InterSignalPause: 200 * time.Millisecond,
	}
}

// Difficulty tightens the timing as the score grows.
type Difficulty struct {
	Enabled bool
	Every   int // Tighten when score is a positive multiple of Every

	FlashStep  time.Duration
	FlashFloor time.Duration

	PreSequenceStep  time.Duration
	PreSequenceFloor time.Duration

	InterSignalStep  time.Duration
	InterSignalFloor time.Duration
}

// DefaultDifficulty returns the stock progression: every 3rd round,
// 50ms/75ms/10ms off with floors of 100ms/325ms/150ms.
func DefaultDifficulty() Difficulty {
	return Difficulty{
		Enabled:          true,
		Every:            3,
		FlashStep:        50 * time.Millisecond,
		FlashFloor:       100 * time.Millisecond,
		PreSequenceStep:  75 * time.Millisecond,
		PreSequenceFloor: 325 * time.Millisecond,
		InterSignalStep:  10 * time.Millisecond,
		InterSignalFloor: 150 * time.Millisecond,
	}
}

// Adjust returns the timing to use after the given score has been reached.
// It is pure: the same inputs always give the same result.
func (d Difficulty) Adjust(t Timing, score int) Timing {
	if !d.Enabled || d.Every <= 0 || score <= 0 || score%d.Every != 0 {
		return t
	}
	return Timing{
		Flash:            stepDown(t.Flash, d.FlashStep, d.FlashFloor),
		PreSequencePause: stepDown(t.PreSequencePause, d.PreSequenceStep, d.PreSequenceFloor),
		InterSignalPause: stepDown(t.InterSignalPause, d.InterSignalStep, d.InterSignalFloor),
	}
}

// ForScore replays Adjust for every score from 1 to score starting at base.
func (d Difficulty) ForScore(base Timing, score int) Timing {
	t := base
	for s := 1; s <= score; s++ {
		t = d.Adjust(t, s)
	}
	return t
}

// stepDown subtracts step from v without going under floor.
// Values already at or below the floor are returned unchanged.
func stepDown(v, step, floor time.Duration) time.Duration {
	if v <= floor {
		return v
	}
	v -= step
	if v < floor {
		return floor
	}
	return v
}

// Settings is the full set of engine constants.
type Settings struct {
	Timing          Timing
	Settle          time.Duration // Dark gap after each flash
	InterRoundDelay time.Duration // Pause between a completed round and the next
	Difficulty      Difficulty
}

// DefaultSettings returns the stock engine settings.
func DefaultSettings() Settings {
	return Settings{
		Timing:          DefaultTiming(),
		Settle:          100 * time.Millisecond,
		InterRoundDelay: 1200 * time.Millisecond,
		Difficulty:      DefaultDifficulty(),
	}
}

// SettingsFromConfig converts the YAML configuration into engine settings.
func SettingsFromConfig(cfg config.SimonConfig) Settings {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }

	diff := Difficulty{
		Enabled:          cfg.Difficulty.Enabled,
		Every:            cfg.Difficulty.EveryRounds,
		FlashStep:        ms(cfg.Difficulty.Flash.StepMs),
		FlashFloor:       ms(cfg.Difficulty.Flash.FloorMs),
		PreSequenceStep:  ms(cfg.Difficulty.PreSequence.StepMs),
		PreSequenceFloor: ms(cfg.Difficulty.PreSequence.FloorMs),
		InterSignalStep:  ms(cfg.Difficulty.InterSignal.StepMs),
		InterSignalFloor: ms(cfg.Difficulty.InterSignal.FloorMs),
	}

	base := Timing{
		Flash:            ms(cfg.Timing.FlashMs),
		PreSequencePause: ms(cfg.Timing.PreSequencePauseMs),
		InterSignalPause: ms(cfg.Timing.InterSignalPauseMs),
	}
	// A head start compresses the opening timing as if that many rounds
	// had already been won.
	if cfg.Difficulty.HeadStart > 0 {
		base = diff.ForScore(base, cfg.Difficulty.HeadStart)
	}

	return Settings{
		Timing:          base,
		Settle:          ms(cfg.Timing.SettleMs),
		InterRoundDelay: ms(cfg.Timing.InterRoundDelayMs),
		Difficulty:      diff,
	}
}
