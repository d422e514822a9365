// Package config provides YAML-based game configuration loading and
// difficulty presets for Simon.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// SimonConfig contains all configuration for the Simon game.
type SimonConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines the opening presentation pace, in milliseconds.
type TimingConfig struct {
	FlashMs            int `yaml:"flash_ms"`
	SettleMs           int `yaml:"settle_ms"`
	PreSequencePauseMs int `yaml:"pre_sequence_pause_ms"`
	InterSignalPauseMs int `yaml:"inter_signal_pause_ms"`
	InterRoundDelayMs  int `yaml:"inter_round_delay_ms"`
}

// DifficultyConfig defines how the pace tightens as the score grows.
type DifficultyConfig struct {
	Enabled     bool     `yaml:"enabled"`
	EveryRounds int      `yaml:"every_rounds"`
	HeadStart   int      `yaml:"head_start"`
	Flash       StepRule `yaml:"flash"`
	PreSequence StepRule `yaml:"pre_sequence"`
	InterSignal StepRule `yaml:"inter_signal"`
}

// StepRule is a fixed decrement with a lower bound.
type StepRule struct {
	StepMs  int `yaml:"step_ms"`
	FloorMs int `yaml:"floor_ms"`
}

// Validate checks that every duration is usable.
func (c SimonConfig) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("timing.flash_ms", c.Timing.FlashMs)
	positive("timing.pre_sequence_pause_ms", c.Timing.PreSequencePauseMs)
	positive("timing.inter_signal_pause_ms", c.Timing.InterSignalPauseMs)
	if c.Timing.SettleMs < 0 {
		errs = append(errs, fmt.Errorf("timing.settle_ms must not be negative, got %d", c.Timing.SettleMs))
	}
	if c.Timing.InterRoundDelayMs < 0 {
		errs = append(errs, fmt.Errorf("timing.inter_round_delay_ms must not be negative, got %d", c.Timing.InterRoundDelayMs))
	}

	if c.Difficulty.Enabled {
		positive("difficulty.every_rounds", c.Difficulty.EveryRounds)
		for name, rule := range map[string]StepRule{
			"flash":        c.Difficulty.Flash,
			"pre_sequence": c.Difficulty.PreSequence,
			"inter_signal": c.Difficulty.InterSignal,
		} {
			if rule.StepMs < 0 {
				errs = append(errs, fmt.Errorf("difficulty.%s.step_ms must not be negative, got %d", name, rule.StepMs))
			}
			positive("difficulty."+name+".floor_ms", rule.FloorMs)
		}
	}
	if c.Difficulty.HeadStart < 0 {
		errs = append(errs, fmt.Errorf("difficulty.head_start must not be negative, got %d", c.Difficulty.HeadStart))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid simon config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a CLI value to a preset. The empty string means
// "use the config as loaded" and returns an empty preset.
func ParsePreset(v string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(v))); p {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, v)
	}
}

// HeadStartForPreset returns how many rounds of tightening a preset skips.
func HeadStartForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 9
	default:
		return 0
	}
}
