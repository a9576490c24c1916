package ui

import (
	"fmt"
	"math"
	"strings"
)

// SideInfo is everything the side panel shows besides the history.
type SideInfo struct {
	StrokePhase float64 // [0, 1): 0 at the catch
	Resistance  int     // last resistance key pressed, -1 if none
	Power       []float64
	HeartRate   []float64
}

// RenderSidePanel renders the stroke gauge, resistance and history sparklines.
func RenderSidePanel(info SideInfo, width, height int) string {
	innerW := width - 4
	if innerW < 12 {
		innerW = 12
	}

	resistance := "custom"
	if info.Resistance >= 0 {
		resistance = fmt.Sprintf("%d/9", info.Resistance)
	}

	lines := []string{
		StylePanelTitle.Render("STROKE"),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
		"  " + RenderStrokeGauge(info.StrokePhase, innerW-4),
		"",
		StyleLabel.Render("  Resistance ") + StyleValue.Render(resistance),
		"",
		StyleLabel.Render("  Power History:"),
		"  " + StylePowerValue.Render(RenderSparkline(info.Power, innerW-4)),
		"",
		StyleLabel.Render("  Heart Rate History:"),
		"  " + StyleHeartValue.Render(RenderSparkline(info.HeartRate, innerW-4)),
	}

	return fitPanel(StylePanelActive, lines, width, height)
}

// RenderStrokeGauge draws the handle position through one stroke: the drive
// takes the first third of the cycle and the recovery the rest.
func RenderStrokeGauge(phase float64, width int) string {
	if width < 3 {
		width = 3
	}
	phase = phase - math.Floor(phase)

	var pos float64
	if phase < 1.0/3 {
		pos = phase * 3 // drive: catch -> finish
	} else {
		pos = 1 - (phase-1.0/3)*1.5 // recovery: finish -> catch
	}

	filled := int(math.Round(pos * float64(width-2)))
	bar := StyleGaugeFill.Render(strings.Repeat("=", filled)) +
		StyleGaugeEmpty.Render(strings.Repeat("-", width-2-filled))
	return StyleHelp.Render("[") + bar + StyleHelp.Render("]")
}

// RenderSparkline scales the last width values between their min and max.
func RenderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}
	values = values[start:]

	minV, maxV := values[0], values[0]
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	rng := maxV - minV
	if rng < 1 {
		rng = 1
	}

	var sb strings.Builder
	for _, v := range values {
		idx := int((v - minV) / rng * float64(len(chars)-1))
		idx = max(0, min(len(chars)-1, idx))
		sb.WriteByte(chars[idx])
	}
	return sb.String()
}
