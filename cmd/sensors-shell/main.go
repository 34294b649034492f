//go:build linux && cgo

// Command sensors-shell is an interactive console for exploring
// hardware-monitoring chips: list chips, browse their features, read
// values, and write to writable sub-features.
//
// Usage:
//
//	sensors-shell [flags]
//
// Session example:
//
//	sensors> chips
//	sensors> use k10temp-pci-00c3
//	k10temp-pci-00c3> features
//	k10temp-pci-00c3> read temp1
//	k10temp-pci-00c3> set temp1_max 85
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/lmsensors-go/lmsensors/pkg/sensorlog"
	"github.com/lmsensors-go/lmsensors/pkg/sensors"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "sensors-shell",
		Usage:   "Interactive sensor chip explorer",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "libsensors configuration file (default: library search paths)",
				Sources: cli.EnvVars("SENSORS_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "history",
				Usage: "Readline history file",
				Value: defaultHistoryPath(),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			in := sensors.New().WithListener(sensorlog.NewSlogListener(logger))
			if path := cmd.String("config"); path != "" {
				in = in.WithConfigPath(path)
			}
			h, err := in.Init()
			if err != nil {
				return fmt.Errorf("initialize sensors: %w", err)
			}
			defer h.Close()

			sh, err := newShell(h, cmd.String("history"))
			if err != nil {
				return err
			}
			sh.Run(ctx)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sensors_shell_history")
}
