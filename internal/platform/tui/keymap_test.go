package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"1", runeKey('1'), core.ActionPad1, false},
		{"u", runeKey('u'), core.ActionPad1, false},
		{"2", runeKey('2'), core.ActionPad2, false},
		{"i", runeKey('i'), core.ActionPad2, false},
		{"3", runeKey('3'), core.ActionPad3, false},
		{"j", runeKey('j'), core.ActionPad3, false},
		{"4", runeKey('4'), core.ActionPad4, false},
		{"k", runeKey('k'), core.ActionPad4, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionStart, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestSignalFor(t *testing.T) {
	want := map[core.Action]simon.Signal{
		core.ActionPad1: simon.Green,
		core.ActionPad2: simon.Red,
		core.ActionPad3: simon.Yellow,
		core.ActionPad4: simon.Blue,
	}
	for action, sig := range want {
		got, ok := SignalFor(action)
		if !ok || got != sig {
			t.Errorf("SignalFor(%v) = %v, %v; expected %v", action, got, ok, sig)
		}
	}

	if _, ok := SignalFor(core.ActionStart); ok {
		t.Error("SignalFor(Start) should not select a pad")
	}
}
