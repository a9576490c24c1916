package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rowsim.klederson.com/internal/app"
	"rowsim.klederson.com/internal/config"
	"rowsim.klederson.com/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagSeed      int64
	flagLogFile   string
	flagAutoStart bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rowsim",
		Short: "Rowsim - simulated FTMS rowing machine with a terminal monitor",
		Long: `Rowsim fabricates plausible rowing-machine telemetry (stroke rate, power,
pace, heart rate, distance, energy) and shows it on a terminal monitor.

Use the serve command to run the simulator headless and stream snapshots
over websocket, NATS or Kafka, and the scan command to list nearby
Bluetooth devices.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed for reproducible sessions (0 = time-seeded)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", config.LogFile, "Log file for the dashboard")
	rootCmd.Flags().BoolVar(&flagAutoStart, "start", false, "Start rowing immediately")

	rootCmd.AddCommand(newServeCmd(), newScanCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies the persistent flags over the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Simulation.Seed = flagSeed
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := logging.NewFile(flagLogFile, flagDebug)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	sim := cfg.Simulation.NewSimulator()
	if flagAutoStart {
		sim.Start()
	}
	logger.Info("dashboard starting", "params", sim.Params(), "seed", cfg.Simulation.Seed)

	p := tea.NewProgram(
		app.New(sim, logger),
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	_, err = p.Run()
	return err
}
