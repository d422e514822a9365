package simon

// Playback walks a whole sequence through a Presenter.
type Playback struct {
	presenter *Presenter
}

// NewPlayback creates a playback driver on top of presenter.
func NewPlayback(presenter *Presenter) *Playback {
	return &Playback{presenter: presenter}
}

// Play waits t.PreSequencePause, then presents every signal of seq in order,
// each followed by t.InterSignalPause. done runs once after the last pause.
// Presentations never overlap: signal i+1 starts only after signal i completed.
func (p *Playback) Play(sched Scheduler, seq Sequence, t Timing, done func()) {
	sched.After(t.PreSequencePause, func() {
		p.step(sched, seq, 0, t, done)
	})
}

func (p *Playback) step(sched Scheduler, seq Sequence, i int, t Timing, done func()) {
	if i >= seq.Len() {
		done()
		return
	}
	p.presenter.Present(sched, seq.At(i), t, func() {
		sched.After(t.InterSignalPause, func() {
			p.step(sched, seq, i+1, t, done)
		})
	})
}
