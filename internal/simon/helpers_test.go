package simon

import (
	"errors"
	"testing"
	"time"
)

// scriptedSource makes rand.Rand.Intn(4) return the scripted signals in order,
// cycling when it runs out. Intn on a power of two takes the top bits of Int63.
type scriptedSource struct {
	script []Signal
	next   int
}

func (s *scriptedSource) Int63() int64 {
	sig := s.script[s.next%len(s.script)]
	s.next++
	return int64(sig) << 32
}

func (s *scriptedSource) Seed(int64) {}

type litEvent struct {
	at  time.Duration
	sig Signal
	lit bool
}

// recordingDisplay logs every pad toggle with the clock time it happened at.
type recordingDisplay struct {
	clock  *Clock
	events []litEvent
}

func (d *recordingDisplay) SetLit(sig Signal, lit bool) {
	var at time.Duration
	if d.clock != nil {
		at = d.clock.Now()
	}
	d.events = append(d.events, litEvent{at: at, sig: sig, lit: lit})
}

func (d *recordingDisplay) litSignals() []Signal {
	var out []Signal
	for _, ev := range d.events {
		if ev.lit {
			out = append(out, ev.sig)
		}
	}
	return out
}

type recordingListener struct {
	scores    []int
	gameOvers []int
	newHighs  []int
}

func (l *recordingListener) ReportScore(score int)         { l.scores = append(l.scores, score) }
func (l *recordingListener) ReportGameOver(finalScore int) { l.gameOvers = append(l.gameOvers, finalScore) }
func (l *recordingListener) ReportNewHighScore(score int)  { l.newHighs = append(l.newHighs, score) }

type memoryHighScores struct {
	score   int
	saves   []int
	loadErr error
	saveErr error
}

func (m *memoryHighScores) LoadHighScore() (int, error) {
	return m.score, m.loadErr
}

func (m *memoryHighScores) SaveHighScore(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.score = score
	return nil
}

var errDiskFull = errors.New("disk full")

type harness struct {
	engine   *Engine
	display  *recordingDisplay
	listener *recordingListener
	scores   *memoryHighScores
}

func newHarness(t *testing.T, script []Signal, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		display:  &recordingDisplay{},
		listener: &recordingListener{},
		scores:   &memoryHighScores{},
	}
	base := []Option{
		WithRandSource(&scriptedSource{script: script}),
		WithDisplay(h.display),
		WithListener(h.listener),
		WithHighScores(h.scores),
	}
	h.engine = New(DefaultSettings(), append(base, opts...)...)
	h.display.clock = h.engine.Clock()
	return h
}

// waitFor advances the engine in frame-sized steps until it reaches want.
func (h *harness) waitFor(t *testing.T, want State) {
	t.Helper()
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < time.Minute; elapsed += frame {
		if h.engine.State() == want {
			return
		}
		h.engine.Advance(frame)
	}
	t.Fatalf("engine never reached %v, stuck in %v", want, h.engine.State())
}

// playRound waits for input and replays the current sequence exactly.
func (h *harness) playRound(t *testing.T) {
	t.Helper()
	h.waitFor(t, StateAwaitingInput)
	seq := h.engine.Session().Sequence()
	for i := 0; i < seq.Len(); i++ {
		h.engine.Select(seq.At(i))
	}
}
