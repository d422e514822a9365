package simon

import "time"

// Display is the rendering collaborator. It only toggles pads;
// all durations are owned by the engine.
type Display interface {
	SetLit(sig Signal, lit bool)
}

type nopDisplay struct{}

func (nopDisplay) SetLit(Signal, bool) {}

// Presenter flashes single signals on a Display.
type Presenter struct {
	display Display
	settle  time.Duration
	lights  [signalCount]uint64 // Bumped on every light; an unlight only applies to the latest
}

// NewPresenter creates a presenter with the given settle gap.
func NewPresenter(display Display, settle time.Duration) *Presenter {
	if display == nil {
		display = nopDisplay{}
	}
	return &Presenter{display: display, settle: settle}
}

// Present lights sig for t.Flash, turns it off, waits the settle gap and
// then calls done exactly once. Callers must not start another Present
// before done has run.
func (p *Presenter) Present(sched Scheduler, sig Signal, t Timing, done func()) {
	unlight := p.light(sig)
	sched.After(t.Flash, func() {
		unlight()
		sched.After(p.settle, done)
	})
}

// Echo briefly lights sig as feedback for a player selection.
// Nothing waits on it.
func (p *Presenter) Echo(sched Scheduler, sig Signal, t Timing) {
	sched.After(t.Flash, p.light(sig))
}

// light turns sig on and returns a func that turns it off, unless sig was
// lit again in the meantime.
func (p *Presenter) light(sig Signal) func() {
	p.lights[sig]++
	id := p.lights[sig]
	p.display.SetLit(sig, true)
	return func() {
		if p.lights[sig] == id {
			p.display.SetLit(sig, false)
		}
	}
}

// Blank turns every pad off.
func (p *Presenter) Blank() {
	for _, sig := range Alphabet() {
		p.lights[sig]++
		p.display.SetLit(sig, false)
	}
}
