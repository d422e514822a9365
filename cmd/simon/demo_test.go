package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-simon/internal/simon"
)

func TestScaleSettings(t *testing.T) {
	s := scaleSettings(simon.DefaultSettings(), 4)

	assert.Equal(t, 100*time.Millisecond, s.Timing.Flash)
	assert.Equal(t, 175*time.Millisecond, s.Timing.PreSequencePause)
	assert.Equal(t, 50*time.Millisecond, s.Timing.InterSignalPause)
	assert.Equal(t, 25*time.Millisecond, s.Settle)
	assert.Equal(t, 300*time.Millisecond, s.InterRoundDelay)
	assert.Equal(t, 25*time.Millisecond, s.Difficulty.FlashFloor)
	assert.Equal(t, 3, s.Difficulty.Every)
}

func runBot(t *testing.T, maxRounds, mistakeAt int) simon.Snapshot {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	settings := scaleSettings(simon.DefaultSettings(), 50)
	d := simon.NewDriver(simon.New(settings, simon.WithSeed(3)), time.Millisecond)

	runCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- d.Run(runCtx) }()
	defer func() {
		stop()
		<-done
	}()

	snap, err := playBot(ctx, d, maxRounds, mistakeAt, time.Millisecond)
	require.NoError(t, err)
	return snap
}

func TestPlayBotStopsAtMaxRounds(t *testing.T) {
	snap := runBot(t, 4, 0)

	assert.Equal(t, 4, snap.Score)
	assert.NotEqual(t, simon.StateGameOver, snap.State)
}

func TestPlayBotMistake(t *testing.T) {
	snap := runBot(t, 10, 3)

	assert.Equal(t, simon.StateGameOver, snap.State)
	assert.Equal(t, 2, snap.Score)
	assert.True(t, snap.NewRecord)
}
