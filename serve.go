package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rowsim.klederson.com/internal/broadcast"
	"rowsim.klederson.com/internal/config"
	"rowsim.klederson.com/internal/format"
	"rowsim.klederson.com/internal/logging"
	"rowsim.klederson.com/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		natsURL   string
		brokers   []string
		autoStart bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simulator headless and stream snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Serve.ListenAddr = addr
			}
			if cmd.Flags().Changed("nats") {
				cfg.Serve.NATSURL = natsURL
			}
			if cmd.Flags().Changed("kafka") {
				cfg.Serve.KafkaBrokers = brokers
			}
			if autoStart {
				cfg.Serve.AutoStart = true
			}
			return serve(cmd.Context(), cfg, logging.New(os.Stderr, flagDebug))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultListenAddr, "HTTP listen address")
	cmd.Flags().StringVar(&natsURL, "nats", "", "NATS URL to publish snapshots to (disabled when empty)")
	cmd.Flags().StringSliceVar(&brokers, "kafka", nil, "Kafka brokers to publish snapshots to (disabled when empty)")
	cmd.Flags().BoolVar(&autoStart, "start", false, "Start rowing immediately")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := broadcast.NewHub(log)
	defer hub.Close()
	metrics := broadcast.NewMetrics()
	sinks := []broadcast.Sink{hub, metrics}

	if cfg.Serve.NATSURL != "" {
		nc, err := broadcast.ConnectNATS(cfg.Serve.NATSURL)
		if err != nil {
			return fmt.Errorf("connect nats %s: %w", cfg.Serve.NATSURL, err)
		}
		defer nc.Drain()
		sinks = append(sinks, broadcast.NewNATSPublisher(nc, cfg.Serve.NATSSubject, log))
		log.Info("publishing to nats", "url", cfg.Serve.NATSURL, "subject", cfg.Serve.NATSSubject)
	}

	if len(cfg.Serve.KafkaBrokers) > 0 {
		kp := broadcast.NewKafkaPublisher(cfg.Serve.KafkaBrokers, cfg.Serve.KafkaTopic, log)
		defer func() {
			if err := kp.Close(); err != nil {
				log.Warn("close kafka writer", "err", err)
			}
		}()
		sinks = append(sinks, kp)
		log.Info("publishing to kafka", "brokers", cfg.Serve.KafkaBrokers, "topic", cfg.Serve.KafkaTopic)
	}

	fanout := broadcast.NewFanout(sinks...)
	sim := cfg.Simulation.NewSimulator()
	sim.Subscribe(fanout.Publish)
	if cfg.Serve.AutoStart {
		sim.Start()
	}
	metrics.SetRunning(sim.IsRunning())

	srv := server.New(sim, fanout, hub, metrics, log, os.Stderr)
	httpSrv := &http.Server{
		Addr:    cfg.Serve.ListenAddr,
		Handler: srv.Router(),
	}

	// Runs before the sink defers above so no tick lands on a closed sink.
	clockCtx, stopClock := context.WithCancel(ctx)
	clockDone := server.StartClock(clockCtx, sim, cfg.Serve.FPS)
	defer func() {
		stopClock()
		<-clockDone
		if s := sim.Snapshot(); !s.IsZero() {
			fmt.Fprint(os.Stdout, format.Text(s))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Serve.ListenAddr, "fps", cfg.Serve.FPS, "session", fanout.Session())
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
