package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rowsim.klederson.com/internal/rower"
)

// RenderStatusBar renders the bottom bar with the current base parameters.
func RenderStatusBar(width int, running bool, p rower.Params, fps float64) string {
	status := StyleStatusStopped.Render("[STOPPED]")
	if running {
		status = StyleStatusRunning.Render("[ROWING]")
	}

	info := fmt.Sprintf(" Base: %.0f SPM  %dW  %d BPM  %d:%02d/500m  %.1fm/stroke  %.0f fps",
		p.BaseStrokeRate, p.BasePower, p.BaseHeartRate, p.BasePace/60, p.BasePace%60, p.DistancePerStroke, fps)

	content := status + StyleStatusBar.Render(info)

	// Width includes the bar's horizontal padding.
	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
