package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rowsim.klederson.com/internal/rower"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rowsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
	require.Equal(t, rower.DefaultParams(), cfg.Simulation.Params)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation:
  base_stroke_rate: 28
  power_variation: 0
  seed: 5
  resistance: 0.5
serve:
  listen_addr: "127.0.0.1:9000"
  kafka_brokers: ["localhost:9092"]
scan:
  timeout: 3s
  demo: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 28.0, cfg.Simulation.Params.BaseStrokeRate)
	require.Equal(t, 0, cfg.Simulation.Params.PowerVariation)
	require.Equal(t, 150, cfg.Simulation.Params.BasePower)
	require.Equal(t, int64(5), cfg.Simulation.Seed)
	require.NotNil(t, cfg.Simulation.Resistance)
	require.Equal(t, "127.0.0.1:9000", cfg.Serve.ListenAddr)
	require.Equal(t, TargetFPS, cfg.Serve.FPS)
	require.Equal(t, []string{"localhost:9092"}, cfg.Serve.KafkaBrokers)
	require.Equal(t, DefaultKafkaTopic, cfg.Serve.KafkaTopic)
	require.Equal(t, 3*time.Second, cfg.Scan.Timeout)
	require.True(t, cfg.Scan.Demo)

	sim := cfg.Simulation.NewSimulator()
	require.Equal(t, 180, sim.Params().BasePower)
	require.Equal(t, 28.0, sim.Params().BaseStrokeRate)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "simulation:\n  base_stroke: 20\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Params.BaseStrokeRate = 50
	cfg.Simulation.Params.BasePace = 30
	cfg.Serve.FPS = 0
	level := 1.5
	cfg.Simulation.Resistance = &level

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"base_stroke_rate", "base_pace", "fps", "resistance"} {
		require.Contains(t, err.Error(), want)
	}
}
