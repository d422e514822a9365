package simon

import (
	"context"
	"errors"
	"time"
)

// ErrDriverStopped is returned by commands sent after Run has returned.
var ErrDriverStopped = errors.New("simon: driver stopped")

// Driver runs an Engine in real time on a single goroutine.
// Run owns the engine; every other method hands work to that goroutine, so
// engine callbacks (Display, Listener) are never invoked concurrently.
type Driver struct {
	engine *Engine
	tick   time.Duration
	cmds   chan func(*Engine)
	done   chan struct{}
}

// NewDriver creates a driver that advances e every tick.
func NewDriver(e *Engine, tick time.Duration) *Driver {
	if tick <= 0 {
		tick = time.Second / 60
	}
	return &Driver{
		engine: e,
		tick:   tick,
		cmds:   make(chan func(*Engine)),
		done:   make(chan struct{}),
	}
}

// Run processes ticks and commands until ctx is canceled.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			d.engine.Advance(now.Sub(last))
			last = now
		case cmd := <-d.cmds:
			cmd(d.engine)
		}
	}
}

// Do runs fn on the engine goroutine and waits for it to finish.
// ctx only bounds the wait for the engine to accept fn.
func (d *Driver) Do(ctx context.Context, fn func(*Engine)) error {
	finished := make(chan struct{})
	cmd := func(e *Engine) {
		fn(e)
		close(finished)
	}

	select {
	case d.cmds <- cmd:
	case <-d.done:
		return ErrDriverStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	// Run executes cmd synchronously once accepted, so fn always finishes
	// before Do returns and callers may read what it wrote.
	<-finished
	return nil
}

// Start requests a new game.
func (d *Driver) Start(ctx context.Context) error {
	return d.Do(ctx, func(e *Engine) { e.Start() })
}

// Restart abandons the current game and starts another.
func (d *Driver) Restart(ctx context.Context) error {
	return d.Do(ctx, func(e *Engine) { e.Restart() })
}

// Select forwards a player selection.
func (d *Driver) Select(ctx context.Context, sig Signal) error {
	return d.Do(ctx, func(e *Engine) { e.Select(sig) })
}

// Snapshot reads the engine state.
func (d *Driver) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := d.Do(ctx, func(e *Engine) { snap = e.Snapshot() })
	return snap, err
}

// Sequence reads the current sequence.
func (d *Driver) Sequence(ctx context.Context) (Sequence, error) {
	var seq Sequence
	err := d.Do(ctx, func(e *Engine) { seq = e.Session().Sequence() })
	return seq, err
}
