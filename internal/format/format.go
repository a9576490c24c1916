// Package format renders rower snapshots as the labels shown on the
// dashboard.
package format

import (
	"fmt"
	"strings"

	"rowsim.klederson.com/internal/rower"
)

// Field is one labelled dashboard value.
type Field struct {
	Label string
	Value string
}

// Pace formats seconds per 500m as M:SS/500m.
func Pace(sec int) string {
	return Clock(sec) + "/500m"
}

// Clock formats seconds as M:SS. Minutes are not wrapped into hours.
func Clock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// Distance formats meters as "Nm (N.NNkm)".
func Distance(m int) string {
	return fmt.Sprintf("%dm (%.2fkm)", m, float64(m)/1000.0)
}

// StrokeRate formats strokes per minute with one decimal.
func StrokeRate(spm float64) string {
	return fmt.Sprintf("%.1f SPM", spm)
}

// Power formats watts.
func Power(w int) string {
	return fmt.Sprintf("%dW", w)
}

// HeartRate formats beats per minute.
func HeartRate(bpm int) string {
	return fmt.Sprintf("%d BPM", bpm)
}

// Calories formats total energy with the per-minute rate.
func Calories(total, perMinute int) string {
	return fmt.Sprintf("%d kcal (%d kcal/min)", total, perMinute)
}

// Current returns the instantaneous and cumulative fields.
func Current(s rower.Snapshot) []Field {
	return []Field{
		{"Stroke Rate", StrokeRate(s.StrokeRate)},
		{"Strokes", fmt.Sprintf("%d", s.StrokeCount)},
		{"Distance", Distance(s.TotalDistance)},
		{"Pace", Pace(s.InstantaneousPace)},
		{"Power", Power(s.InstantaneousPower)},
		{"Heart Rate", HeartRate(s.HeartRate)},
		{"Time", Clock(s.ElapsedTime)},
		{"Calories", Calories(s.TotalEnergy, s.EnergyPerMinute)},
	}
}

// Averages returns the session average fields.
func Averages(s rower.Snapshot) []Field {
	return []Field{
		{"Avg Stroke Rate", StrokeRate(s.AverageStrokeRate)},
		{"Avg Pace", Pace(s.AveragePace)},
		{"Avg Power", Power(s.AveragePower)},
	}
}

// Lines returns every field in display order.
func Lines(s rower.Snapshot) []Field {
	return append(Current(s), Averages(s)...)
}

// Text renders a snapshot as "Label: value" lines.
func Text(s rower.Snapshot) string {
	var b strings.Builder
	for _, f := range Lines(s) {
		b.WriteString(f.Label + ": " + f.Value + "\n")
	}
	return b.String()
}
