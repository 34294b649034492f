// Package sensorlog provides ready-made diagnostic listeners for the
// sensors package.
//
// The native library reports configuration problems and fatal
// conditions through callbacks rather than return values. This
// package adapts those callbacks to common sinks:
//
//	// For services: structured logging via slog
//	sensors.New().WithListener(sensorlog.NewSlogListener(slog.Default()))
//
//	// For tests: capture diagnostics in memory
//	rec := sensorlog.NewRecorder()
//	sensors.New().WithListener(rec)
//
//	// Both at once
//	sensors.New().WithListener(sensorlog.Multi(
//	    sensorlog.NewSlogListener(slog.Default()),
//	    rec,
//	))
//
// The package is pure Go and builds on every platform, so callers can
// construct and test listeners without the native library present.
package sensorlog
