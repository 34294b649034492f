//go:build linux && cgo

// Command sensors-dump prints every detected hardware-monitoring
// chip with its features and current readings, in the style of the
// stock sensors tool or as YAML/JSON for scripting.
//
// Usage:
//
//	sensors-dump [flags]
//
// Examples:
//
//	# All chips, human-readable
//	sensors-dump
//
//	# Only k10temp chips, as YAML
//	sensors-dump --match 'k10temp-*' --format yaml
//
//	# Against a specific configuration file
//	sensors-dump --config ./sensors.conf
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/lmsensors-go/lmsensors/internal/snapshot"
	"github.com/lmsensors-go/lmsensors/pkg/sensorlog"
	"github.com/lmsensors-go/lmsensors/pkg/sensors"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "sensors-dump",
		Usage:   "Dump detected sensor chips and their readings",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "libsensors configuration file (default: library search paths)",
				Sources: cli.EnvVars("SENSORS_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "match",
				Usage: "Chip name pattern, e.g. 'k10temp-*' or '*-isa-*'",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text, yaml, or json",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Write to file instead of stdout",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
				Value: "warn",
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
	logger := newLogger(cmd.String("log-level"))

	format := cmd.String("format")
	switch format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}

	in := sensors.New().WithListener(sensorlog.NewSlogListener(logger))
	if path := cmd.String("config"); path != "" {
		in = in.WithConfigPath(path)
	}
	h, err := in.Init()
	if err != nil {
		return fmt.Errorf("initialize sensors: %w", err)
	}
	defer h.Close()

	logger.Debug("sensors initialized", "library_version", h.Version())

	var match *sensors.Chip
	if pattern := cmd.String("match"); pattern != "" {
		match, err = h.ParseChipName(pattern)
		if err != nil {
			return fmt.Errorf("parse chip pattern %q: %w", pattern, err)
		}
		defer match.Close()
	}

	chips, err := snapshot.Collect(h, match)
	if err != nil {
		return fmt.Errorf("collect readings: %w", err)
	}
	logger.Debug("collected", "chips", len(chips))

	out := io.Writer(os.Stdout)
	if path := cmd.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(chips); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(chips)
	default:
		snapshot.Text(out, chips)
		return nil
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
