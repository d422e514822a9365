package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

// KeyMap defines the key bindings for the game board.
type KeyMap struct {
	Green      key.Binding
	Red        key.Binding
	Yellow     key.Binding
	Blue       key.Binding
	Start      key.Binding
	Restart    key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Green, k.Red, k.Yellow, k.Blue, k.Start, k.Restart, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Green, k.Red, k.Yellow, k.Blue},
		{k.Start, k.Restart, k.Scoreboard, k.Quit},
	}
}

// DefaultKeyMap returns the default board bindings. Pads are laid out
// 1 2 / 3 4 on the number row and u i / j k on the letters.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Green: key.NewBinding(
			key.WithKeys("1", "u"),
			key.WithHelp("1/u", "green"),
		),
		Red: key.NewBinding(
			key.WithKeys("2", "i"),
			key.WithHelp("2/i", "red"),
		),
		Yellow: key.NewBinding(
			key.WithKeys("3", "j"),
			key.WithHelp("3/j", "yellow"),
		),
		Blue: key.NewBinding(
			key.WithKeys("4", "k"),
			key.WithHelp("4/k", "blue"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for rendering help.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Green):
		return core.ActionPad1, false
	case key.Matches(msg, km.keys.Red):
		return core.ActionPad2, false
	case key.Matches(msg, km.keys.Yellow):
		return core.ActionPad3, false
	case key.Matches(msg, km.keys.Blue):
		return core.ActionPad4, false
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Scoreboard):
		return core.ActionScoreboard, false
	}
	return core.ActionNone, false
}

// SignalFor returns the pad a pad action selects.
func SignalFor(a core.Action) (simon.Signal, bool) {
	pad, ok := a.Pad()
	if !ok {
		return 0, false
	}
	return simon.Alphabet()[pad], true
}
