package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"rowsim.klederson.com/internal/rower"
)

func TestRenderSparkline(t *testing.T) {
	require.Empty(t, RenderSparkline(nil, 10))
	require.Equal(t, "_^", RenderSparkline([]float64{100, 200}, 10))
	require.Equal(t, "___", RenderSparkline([]float64{150, 150, 150}, 10))

	// only the last width values are drawn
	require.Equal(t, "_^", RenderSparkline([]float64{500, 0, 100, 200}, 2))
}

func TestRenderStrokeGauge(t *testing.T) {
	catch := RenderStrokeGauge(0, 12)
	finish := RenderStrokeGauge(1.0/3, 12)
	require.Equal(t, 12, lipgloss.Width(catch))
	require.Equal(t, 12, lipgloss.Width(finish))
	require.Equal(t, 0, strings.Count(catch, "="))
	require.Equal(t, 10, strings.Count(finish, "="))
	require.Equal(t, 5, strings.Count(RenderStrokeGauge(2.0/3, 12), "="))
}

func TestPanelsFitHeight(t *testing.T) {
	for _, h := range []int{6, 14, 30} {
		metrics := RenderMetricsPanel(rower.Snapshot{HeartRate: 130}, 40, h)
		require.Equal(t, h, lipgloss.Height(metrics), "metrics height %d", h)

		side := RenderSidePanel(SideInfo{Resistance: -1, Power: []float64{1, 2, 3}}, 30, h)
		require.Equal(t, h, lipgloss.Height(side), "side height %d", h)
	}
}

func TestMetricsPanelShowsFormattedValues(t *testing.T) {
	out := RenderMetricsPanel(rower.Snapshot{InstantaneousPace: 118, TotalDistance: 1234}, 50, 20)
	require.Contains(t, out, "1:58/500m")
	require.Contains(t, out, "1234m (1.23km)")
}

func TestBarsSpanWidth(t *testing.T) {
	require.Equal(t, 100, lipgloss.Width(RenderMenuBar(100, true)))
	require.Equal(t, 120, lipgloss.Width(RenderStatusBar(120, false, rower.DefaultParams(), 30)))
	require.Contains(t, RenderStatusBar(120, false, rower.DefaultParams(), 30), "2:00/500m")
}
