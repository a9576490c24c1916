package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rowsim.klederson.com/internal/bluetooth"
	"rowsim.klederson.com/internal/logging"
)

func newScanCmd() *cobra.Command {
	var (
		demo    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List nearby Bluetooth LE devices once",
		Long: `Scan enables the default Bluetooth adapter, listens for advertisements
for the given timeout and prints each device as "Device: <name> | ID: <id>".
Devices advertising the Fitness Machine service are tagged [FTMS].

Requires sudo or CAP_NET_ADMIN capability for real Bluetooth scanning.
Use --demo for fake devices without Bluetooth hardware.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("demo") {
				cfg.Scan.Demo = demo
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Scan.Timeout = timeout
			}

			log := logging.New(os.Stderr, flagDebug)

			var lister bluetooth.Lister
			if cfg.Scan.Demo {
				lister = bluetooth.NewMockLister(cfg.Simulation.Seed)
			} else {
				lister = bluetooth.NewBLELister(log)
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, cancel := context.WithTimeout(parent, cfg.Scan.Timeout)
			defer cancel()

			log.Info("Scanning for BLE devices...", "timeout", cfg.Scan.Timeout, "demo", cfg.Scan.Demo)
			devices, err := lister.List(ctx)
			if err != nil {
				// Reported, not fatal: a failed scan is a diagnostic.
				log.Error("BLE error", "err", err)
				return nil
			}
			return bluetooth.Print(cmd.OutOrStdout(), devices)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "List fake devices (no Bluetooth required)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Scan duration (default from config, 10s)")
	return cmd
}
