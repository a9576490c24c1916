package rower

// Effort and resistance bounds.
const (
	MinStrokeRate = 10.0
	MaxStrokeRate = 40.0
	MinPower      = 50
	MinHeartRate  = 80
	MinPace       = 60  // 1:00/500m
	MaxPace       = 180 // 3:00/500m

	StrokeRateStep = 2.0
	PowerStep      = 20
	HeartRateStep  = 5
	PaceStep       = 5
)

// Params holds the base values the simulator jitters around each tick.
type Params struct {
	BaseStrokeRate    float64 `yaml:"base_stroke_rate" json:"baseStrokeRate"`       // SPM
	BasePower         int     `yaml:"base_power" json:"basePower"`                  // watts
	BaseHeartRate     int     `yaml:"base_heart_rate" json:"baseHeartRate"`         // BPM
	BasePace          int     `yaml:"base_pace" json:"basePace"`                    // seconds per 500m
	DistancePerStroke float64 `yaml:"distance_per_stroke" json:"distancePerStroke"` // meters

	StrokeRateVariation float64 `yaml:"stroke_rate_variation" json:"strokeRateVariation"`
	PowerVariation      int     `yaml:"power_variation" json:"powerVariation"`
	HeartRateVariation  int     `yaml:"heart_rate_variation" json:"heartRateVariation"`
	PaceVariation       int     `yaml:"pace_variation" json:"paceVariation"`
}

// DefaultParams returns a moderate steady-state piece: 24 SPM at 150W,
// 2:00/500m and 130 BPM.
func DefaultParams() Params {
	return Params{
		BaseStrokeRate:      24.0,
		BasePower:           150,
		BaseHeartRate:       130,
		BasePace:            120,
		DistancePerStroke:   10.0,
		StrokeRateVariation: 2.0,
		PowerVariation:      15,
		HeartRateVariation:  5,
		PaceVariation:       5,
	}
}

// WithoutVariation returns a copy of p with every variation bound set to zero.
func (p Params) WithoutVariation() Params {
	p.StrokeRateVariation = 0
	p.PowerVariation = 0
	p.HeartRateVariation = 0
	p.PaceVariation = 0
	return p
}

func (p *Params) increase() {
	p.BaseStrokeRate = min(MaxStrokeRate, p.BaseStrokeRate+StrokeRateStep)
	p.BasePower += PowerStep
	p.BaseHeartRate += HeartRateStep
	p.BasePace = max(MinPace, p.BasePace-PaceStep)
}

func (p *Params) decrease() {
	p.BaseStrokeRate = max(MinStrokeRate, p.BaseStrokeRate-StrokeRateStep)
	p.BasePower = max(MinPower, p.BasePower-PowerStep)
	p.BaseHeartRate = max(MinHeartRate, p.BaseHeartRate-HeartRateStep)
	p.BasePace = min(MaxPace, p.BasePace+PaceStep)
}

// applyResistance maps level 0.0 (easy) .. 1.0 (hard) onto power, pace and
// distance per stroke. Levels outside the range are clamped.
func (p *Params) applyResistance(level float64) {
	level = max(0, min(1, level))
	p.BasePower = int(80 + level*200)      // 80-280 W
	p.BasePace = int(90 + level*60)        // 1:30 to 2:30 per 500m
	p.DistancePerStroke = 8.0 + level*4.0 // 8-12 m
}
