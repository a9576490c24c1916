package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rowsim.klederson.com/internal/format"
	"rowsim.klederson.com/internal/rower"
)

// RenderMetricsPanel renders the live and average readouts.
func RenderMetricsPanel(s rower.Snapshot, width, height int) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	lines := []string{
		StylePanelTitle.Render("MONITOR"),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	}
	for _, f := range format.Current(s) {
		lines = append(lines, renderField(f))
	}
	lines = append(lines, "", StylePanelTitle.Render("AVERAGES"))
	for _, f := range format.Averages(s) {
		lines = append(lines, renderField(f))
	}

	return fitPanel(StylePanelBorder, lines, width, height)
}

func renderField(f format.Field) string {
	label := StyleLabel.Render(fmt.Sprintf("  %-16s", f.Label))
	switch f.Label {
	case "Power", "Avg Power":
		return label + StylePowerValue.Render(f.Value)
	case "Heart Rate":
		return label + StyleHeartValue.Render(f.Value)
	}
	return label + StyleValue.Render(f.Value)
}

// fitPanel pads or truncates lines to the inner height and draws the border.
// lipgloss Height() only sets a minimum; it won't truncate overflow.
func fitPanel(style lipgloss.Style, lines []string, width, height int) string {
	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	return style.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}
