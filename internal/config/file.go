package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"rowsim.klederson.com/internal/rower"
)

// Config is the runtime configuration, loadable from YAML. Zero-valued
// fields in the file keep their defaults.
type Config struct {
	Simulation Simulation `yaml:"simulation"`
	Serve      Serve      `yaml:"serve"`
	Scan       Scan       `yaml:"scan"`
}

// Simulation seeds the rower simulator.
type Simulation struct {
	Params     rower.Params `yaml:",inline"`
	Seed       int64        `yaml:"seed"`       // 0 means time-seeded
	Resistance *float64     `yaml:"resistance"` // applied after Params when set
}

// Serve configures the headless broadcaster.
type Serve struct {
	ListenAddr   string   `yaml:"listen_addr"`
	FPS          int      `yaml:"fps"`
	NATSURL      string   `yaml:"nats_url"`
	NATSSubject  string   `yaml:"nats_subject"`
	KafkaBrokers []string `yaml:"kafka_brokers"`
	KafkaTopic   string   `yaml:"kafka_topic"`
	AutoStart    bool     `yaml:"auto_start"`
}

// Scan configures the Bluetooth device listing.
type Scan struct {
	Timeout time.Duration `yaml:"timeout"`
	Demo    bool          `yaml:"demo"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Simulation: Simulation{Params: rower.DefaultParams()},
		Serve: Serve{
			ListenAddr:  DefaultListenAddr,
			FPS:         TargetFPS,
			NATSSubject: DefaultNATSSubject,
			KafkaTopic:  DefaultKafkaTopic,
		},
		Scan: Scan{Timeout: DefaultScanTimeout},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulator or servers cannot run with.
func (c Config) Validate() error {
	p := c.Simulation.Params
	var errs []error
	if p.BaseStrokeRate < rower.MinStrokeRate || p.BaseStrokeRate > rower.MaxStrokeRate {
		errs = append(errs, fmt.Errorf("base_stroke_rate %.1f outside [%.0f, %.0f]",
			p.BaseStrokeRate, rower.MinStrokeRate, rower.MaxStrokeRate))
	}
	if p.BasePace < rower.MinPace || p.BasePace > rower.MaxPace {
		errs = append(errs, fmt.Errorf("base_pace %d outside [%d, %d]", p.BasePace, rower.MinPace, rower.MaxPace))
	}
	if p.BasePower < 0 || p.BaseHeartRate < 0 || p.DistancePerStroke < 0 {
		errs = append(errs, errors.New("base values must not be negative"))
	}
	if p.StrokeRateVariation < 0 || p.PowerVariation < 0 || p.HeartRateVariation < 0 || p.PaceVariation < 0 {
		errs = append(errs, errors.New("variations must not be negative"))
	}
	if p.StrokeRateVariation >= p.BaseStrokeRate {
		errs = append(errs, errors.New("stroke_rate_variation must be below base_stroke_rate"))
	}
	if r := c.Simulation.Resistance; r != nil && (*r < 0 || *r > 1) {
		errs = append(errs, fmt.Errorf("resistance %.2f outside [0, 1]", *r))
	}
	if c.Serve.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.Serve.FPS))
	}
	if c.Scan.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("scan timeout must be positive, got %s", c.Scan.Timeout))
	}
	return errors.Join(errs...)
}

// NewSimulator builds a simulator from the simulation section.
func (s Simulation) NewSimulator() *rower.Simulator {
	var src rower.RandomSource
	if s.Seed != 0 {
		src = rower.NewRandomSource(s.Seed)
	}
	sim := rower.New(s.Params, src)
	if s.Resistance != nil {
		sim.SetResistance(*s.Resistance)
	}
	return sim
}
