package tui

import (
	"github.com/vovakirdan/tui-simon/internal/simon"
)

// hud is the engine's view of the terminal: it records which pads are lit
// and the last score notifications. The model holds it by pointer so engine
// callbacks survive Bubble Tea's value-copied models.
type hud struct {
	lit       [4]bool
	score     int
	finished  bool // A game over is waiting to be recorded
	lastFinal int
	newHigh   bool
}

func newHUD() *hud {
	return &hud{}
}

// SetLit implements simon.Display.
func (h *hud) SetLit(sig simon.Signal, lit bool) {
	if !sig.Valid() {
		return
	}
	h.lit[sig] = lit
}

// ReportScore implements simon.Listener.
func (h *hud) ReportScore(score int) {
	h.score = score
	if score == 0 {
		h.newHigh = false
	}
}

// ReportGameOver implements simon.Listener.
func (h *hud) ReportGameOver(finalScore int) {
	h.finished = true
	h.lastFinal = finalScore
}

// ReportNewHighScore implements simon.Listener.
func (h *hud) ReportNewHighScore(int) {
	h.newHigh = true
}

// isLit reports whether sig is currently lit.
func (h *hud) isLit(sig simon.Signal) bool {
	return sig.Valid() && h.lit[sig]
}

// takeFinished returns and clears the pending game over.
func (h *hud) takeFinished() (int, bool) {
	if !h.finished {
		return 0, false
	}
	h.finished = false
	return h.lastFinal, true
}

var (
	_ simon.Display  = (*hud)(nil)
	_ simon.Listener = (*hud)(nil)
)
