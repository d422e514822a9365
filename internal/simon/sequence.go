package simon

import (
	"math/rand"
	"strings"
)

// Sequence is the ordered list of signals shown to the player.
// Values are never modified in place; Extend returns a new Sequence.
type Sequence struct {
	signals []Signal
}

// NewSequence builds a sequence from the given signals.
func NewSequence(signals ...Signal) Sequence {
	return Sequence{signals: append([]Signal(nil), signals...)}
}

// Len returns the number of signals.
func (s Sequence) Len() int {
	return len(s.signals)
}

// At returns the signal at index i.
func (s Sequence) At(i int) Signal {
	return s.signals[i]
}

// Signals returns a copy of the underlying signals.
func (s Sequence) Signals() []Signal {
	return append([]Signal(nil), s.signals...)
}

// String joins the color names with commas.
func (s Sequence) String() string {
	names := make([]string, len(s.signals))
	for i, sig := range s.signals {
		names[i] = sig.String()
	}
	return strings.Join(names, ",")
}

// Generator appends random signals to sequences.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Extend returns seq with one uniformly drawn signal appended.
func (g *Generator) Extend(seq Sequence) Sequence {
	next := make([]Signal, len(seq.signals), len(seq.signals)+1)
	copy(next, seq.signals)
	next = append(next, Signal(g.rng.Intn(signalCount)))
	return Sequence{signals: next}
}
