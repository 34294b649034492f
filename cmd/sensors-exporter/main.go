//go:build linux && cgo

// Command sensors-exporter serves hardware-monitoring readings as
// Prometheus metrics. Every scrape reads the chips live, so the
// exported values are as fresh as the kernel's.
//
// Usage:
//
//	sensors-exporter [flags]
//
// Examples:
//
//	# Defaults: all chips, listen on :9137
//	sensors-exporter
//
//	# From a configuration file, CPU temperature chips only
//	sensors-exporter --config exporter.yaml
//
// Configuration file:
//
//	listen: ":9137"
//	metrics_path: /metrics
//	sensors_config: /etc/sensors3.conf
//	match: "k10temp-*"
//	log_level: info
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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"

	"github.com/lmsensors-go/lmsensors/pkg/sensorlog"
	"github.com/lmsensors-go/lmsensors/pkg/sensors"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "sensors-exporter",
		Usage:   "Prometheus exporter for hardware sensors",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Exporter configuration file (YAML)",
				Sources: cli.EnvVars("SENSORS_EXPORTER_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "listen",
				Usage: "HTTP listen address (overrides the config file)",
			},
			&cli.StringFlag{
				Name:  "match",
				Usage: "Chip name pattern (overrides the config file)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error (overrides the config file)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	if v := cmd.String("listen"); v != "" {
		cfg.Listen = v
	}
	if v := cmd.String("match"); v != "" {
		cfg.Match = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	in := sensors.New().WithListener(sensorlog.NewSlogListener(logger))
	if cfg.SensorsConfig != "" {
		in = in.WithConfigPath(cfg.SensorsConfig)
	}
	h, err := in.Init()
	if err != nil {
		return fmt.Errorf("initialize sensors: %w", err)
	}
	defer h.Close()

	var match *sensors.Chip
	if cfg.Match != "" {
		match, err = h.ParseChipName(cfg.Match)
		if err != nil {
			return fmt.Errorf("parse chip pattern %q: %w", cfg.Match, err)
		}
		defer match.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		newCollector(h, match, logger),
	)

	mux := http.NewServeMux()
	mux.Handle(cfg.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "sensors-exporter %s\nmetrics at %s\n", version, cfg.MetricsPath)
	})

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			"addr", cfg.Listen,
			"metrics_path", cfg.MetricsPath,
			"library_version", h.Version(),
			"version", version,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
