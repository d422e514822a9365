package core

import (
	"testing"
	"time"
)

func TestActionPad(t *testing.T) {
	tests := []struct {
		action Action
		pad    int
		ok     bool
	}{
		{ActionPad1, 0, true},
		{ActionPad2, 1, true},
		{ActionPad3, 2, true},
		{ActionPad4, 3, true},
		{ActionNone, 0, false},
		{ActionStart, 0, false},
		{ActionQuit, 0, false},
	}

	for _, tc := range tests {
		pad, ok := tc.action.Pad()
		if pad != tc.pad || ok != tc.ok {
			t.Errorf("%v.Pad() = %d, %v; expected %d, %v", tc.action, pad, ok, tc.pad, tc.ok)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionScoreboard.String() != "Scoreboard" {
		t.Errorf("unexpected name %q", ActionScoreboard.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unexpected name %q", Action(99).String())
	}
}

func TestTickInterval(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() = %v", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() with zero rate = %v", got)
	}

	cfg.TickRate = 20
	if got := cfg.TickInterval(); got != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 50ms", got)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	if cfg.ResolveSeed() != 42 {
		t.Error("explicit seed should be kept")
	}

	cfg.Seed = 0
	if cfg.ResolveSeed() == 0 {
		t.Error("zero seed should be replaced")
	}
}
