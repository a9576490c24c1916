package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the metrics panel and side panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, metrics, side, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, metrics, side)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
