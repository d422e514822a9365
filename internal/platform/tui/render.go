package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-simon/internal/simon"
)

// Board layout constants
const (
	padWidth  = 16
	padHeight = 5
	padGap    = 1
)

// padColors holds the dim and lit colors of each pad.
var padColors = map[simon.Signal][2]lipgloss.Color{
	simon.Green:  {lipgloss.Color("22"), lipgloss.Color("46")},
	simon.Red:    {lipgloss.Color("52"), lipgloss.Color("196")},
	simon.Yellow: {lipgloss.Color("58"), lipgloss.Color("226")},
	simon.Blue:   {lipgloss.Color("17"), lipgloss.Color("39")},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	recordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderPad draws one pad, bright when lit.
func renderPad(sig simon.Signal, lit bool) string {
	colors := padColors[sig]
	bg := colors[0]
	fg := lipgloss.Color("244")
	if lit {
		bg = colors[1]
		fg = lipgloss.Color("16")
	}

	return lipgloss.NewStyle().
		Width(padWidth).
		Height(padHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(bg).
		Foreground(fg).
		Bold(lit).
		Render(fmt.Sprintf("%d", int(sig)+1))
}

// renderPads lays the four pads out in a 2x2 grid.
func renderPads(h *hud) string {
	gap := strings.Repeat(" ", padGap)
	row := func(a, b simon.Signal) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, renderPad(a, h.isLit(a)), gap, renderPad(b, h.isLit(b)))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		row(simon.Green, simon.Red),
		"",
		row(simon.Yellow, simon.Blue),
	)
}

// hudLine renders score, best and round.
func hudLine(snap simon.Snapshot) string {
	return fmt.Sprintf("Score %d   Best %d   Round %d", snap.Score, snap.HighScore, snap.Round)
}

// progressLine shows how much of the round the player has repeated.
func progressLine(snap simon.Snapshot) string {
	if snap.State != simon.StateAwaitingInput || snap.Round == 0 {
		return ""
	}
	return strings.Repeat("●", snap.Progress) + strings.Repeat("○", snap.Round-snap.Progress)
}

// statusLine describes what the player should do next.
func statusLine(snap simon.Snapshot, newHigh bool) string {
	switch snap.State {
	case simon.StateIdle:
		return statusStyle.Render("Press enter to start")
	case simon.StatePresenting:
		return statusStyle.Render("Watch...")
	case simon.StateAwaitingInput:
		return statusStyle.Render("Your turn")
	case simon.StateRoundAdvancing:
		return statusStyle.Render("Correct!")
	case simon.StateGameOver:
		msg := alertStyle.Render(fmt.Sprintf("Game over - score %d", snap.Score))
		if newHigh {
			msg += "  " + recordStyle.Render("New high score!")
		}
		return msg + "\n" + statusStyle.Render("Press enter to play again, tab for scores")
	default:
		return ""
	}
}

// renderBoard composes the whole board screen.
func renderBoard(snap simon.Snapshot, h *hud, helpView string, width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("S I M O N"),
		"",
		hudStyle.Render(hudLine(snap)),
		"",
		renderPads(h),
		"",
		progressLine(snap),
		statusLine(snap, h.newHigh),
		"",
		helpStyle.Render(helpView),
	)

	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
