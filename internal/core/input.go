package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionPad1              // 1, U - green pad
	ActionPad2              // 2, I - red pad
	ActionPad3              // 3, J - yellow pad
	ActionPad4              // 4, K - blue pad
	ActionStart             // Enter, Space - start a game
	ActionRestart           // R - abandon the game and start over
	ActionScoreboard        // Tab - toggle the scoreboard
	ActionBack              // Esc, B - leave the scoreboard
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPad1:
		return "Pad1"
	case ActionPad2:
		return "Pad2"
	case ActionPad3:
		return "Pad3"
	case ActionPad4:
		return "Pad4"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pad returns the zero-based pad index for a pad action.
func (a Action) Pad() (int, bool) {
	if a < ActionPad1 || a > ActionPad4 {
		return 0, false
	}
	return int(a - ActionPad1), true
}
