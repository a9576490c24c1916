package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rowsim.klederson.com/internal/rower"
)

func TestClockAndPace(t *testing.T) {
	require.Equal(t, "0:00", Clock(0))
	require.Equal(t, "2:05", Clock(125))
	require.Equal(t, "61:01", Clock(3661))
	require.Equal(t, "0:00", Clock(-4))

	require.Equal(t, "2:00/500m", Pace(120))
	require.Equal(t, "1:05/500m", Pace(65))
}

func TestDistance(t *testing.T) {
	require.Equal(t, "0m (0.00km)", Distance(0))
	require.Equal(t, "1234m (1.23km)", Distance(1234))
	require.Equal(t, "10m (0.01km)", Distance(10))
}

func TestLines(t *testing.T) {
	s := rower.Snapshot{
		StrokeRate:         24,
		StrokeCount:        12,
		AverageStrokeRate:  23.96,
		TotalDistance:      120,
		InstantaneousPace:  118,
		AveragePace:        125,
		InstantaneousPower: 152,
		AveragePower:       150,
		TotalEnergy:        18,
		EnergyPerMinute:    37,
		HeartRate:          131,
		ElapsedTime:        30,
	}

	lines := Lines(s)
	require.Len(t, lines, 11)
	require.Equal(t, Field{"Stroke Rate", "24.0 SPM"}, lines[0])
	require.Equal(t, Field{"Strokes", "12"}, lines[1])
	require.Equal(t, Field{"Distance", "120m (0.12km)"}, lines[2])
	require.Equal(t, Field{"Pace", "1:58/500m"}, lines[3])
	require.Equal(t, Field{"Power", "152W"}, lines[4])
	require.Equal(t, Field{"Heart Rate", "131 BPM"}, lines[5])
	require.Equal(t, Field{"Time", "0:30"}, lines[6])
	require.Equal(t, Field{"Calories", "18 kcal (37 kcal/min)"}, lines[7])
	require.Equal(t, Field{"Avg Stroke Rate", "24.0 SPM"}, lines[8])
	require.Equal(t, Field{"Avg Pace", "2:05/500m"}, lines[9])
	require.Equal(t, Field{"Avg Power", "150W"}, lines[10])

	require.Contains(t, Text(s), "Heart Rate: 131 BPM\n")
}

func TestZeroSnapshot(t *testing.T) {
	text := Text(rower.Snapshot{})
	require.Contains(t, text, "Pace: 0:00/500m")
	require.Contains(t, text, "Distance: 0m (0.00km)")
	require.Contains(t, text, "Calories: 0 kcal (0 kcal/min)")
}
