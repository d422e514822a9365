// Package core holds the platform-neutral pieces shared by every front end:
// runtime settings and the semantic actions keys are mapped to.
package core

import "time"

// RuntimeConfig contains settings the platform passes to a game session.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second used to advance the game clock
	Seed     int64  // RNG seed for the sequence generator
	Preset   string // Difficulty preset name, recorded with each game
	Player   string // Player name, recorded with each game
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock time between frames.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// ResolveSeed returns the configured seed, or a time-based one if unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
