package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the default Simon configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Timing: TimingConfig{
			FlashMs:            400,
			SettleMs:           100,
			PreSequencePauseMs: 700,
			InterSignalPauseMs: 200,
			InterRoundDelayMs:  1200,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			EveryRounds: 3,
			HeadStart:   0,
			Flash:       StepRule{StepMs: 50, FloorMs: 100},
			PreSequence: StepRule{StepMs: 75, FloorMs: 325},
			InterSignal: StepRule{StepMs: 10, FloorMs: 150},
		},
	}
}
