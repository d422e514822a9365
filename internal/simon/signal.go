// Package simon implements the Simon sequence-recall game: sequence generation,
// timed playback, input validation and the round state machine.
// It contains no Bubble Tea code; the platform drives it through Start, Select
// and Advance and observes it through the Display and Listener collaborators.
package simon

import (
	"fmt"
	"strings"
)

// Signal is one pad of the board.
type Signal uint8

// The four pads, in board order.
const (
	Green Signal = iota
	Red
	Yellow
	Blue
)

// signalCount is the size of the alphabet.
const signalCount = 4

var signalNames = [signalCount]string{"green", "red", "yellow", "blue"}

// Alphabet returns all signals in board order.
func Alphabet() []Signal {
	return []Signal{Green, Red, Yellow, Blue}
}

// Valid reports whether s belongs to the alphabet.
func (s Signal) Valid() bool {
	return s < signalCount
}

// String returns the color name of the signal.
func (s Signal) String() string {
	if !s.Valid() {
		return fmt.Sprintf("signal(%d)", uint8(s))
	}
	return signalNames[s]
}

// ParseSignal converts a color name or a 1-based pad number to a Signal.
func ParseSignal(v string) (Signal, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, name := range signalNames {
		if v == name || v == fmt.Sprint(i+1) {
			return Signal(i), nil
		}
	}
	return 0, fmt.Errorf("simon: unknown signal %q", v)
}
