package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rowsim.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar with the key map.
func RenderMenuBar(width int, running bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"SPACE", "start/stop"},
		{"+/-", "effort"},
		{"0-9", "resistance"},
		{"R", "eset"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	right := runningLabel(running) + " "
	left := StyleMenuKey.Render(title) + menu

	// Width includes the bar's horizontal padding.
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func runningLabel(running bool) string {
	if running {
		return StyleStatusRunning.Render("ROWING")
	}
	return StyleStatusStopped.Render("STOPPED")
}
