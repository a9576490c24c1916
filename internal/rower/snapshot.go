package rower

// Snapshot is the complete set of rower metrics published after a tick.
// Units: meters, watts, BPM, seconds, kcal. Pace is seconds per 500m.
type Snapshot struct {
	StrokeRate         float64 `json:"strokeRate"`
	StrokeCount        int     `json:"strokeCount"`
	AverageStrokeRate  float64 `json:"averageStrokeRate"`
	TotalDistance      int     `json:"totalDistance"`
	InstantaneousPace  int     `json:"instantaneousPace"`
	AveragePace        int     `json:"averagePace"`
	InstantaneousPower int     `json:"instantaneousPower"`
	AveragePower       int     `json:"averagePower"`
	TotalEnergy        int     `json:"totalEnergy"`
	EnergyPerHour      int     `json:"energyPerHour"`
	EnergyPerMinute    int     `json:"energyPerMinute"`
	HeartRate          int     `json:"heartRate"`
	ElapsedTime        int     `json:"elapsedTime"`
	RemainingTime      int     `json:"remainingTime"`
}

// IsZero reports whether every field is zero, which is what Reset publishes.
func (s Snapshot) IsZero() bool {
	return s == Snapshot{}
}

// Subscriber receives every published snapshot. It runs synchronously on
// the goroutine that called Tick or Reset, after the simulator lock has been
// released.
type Subscriber func(Snapshot)
