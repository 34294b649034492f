package sensorlog

import (
	"context"
	"log/slog"
	"sync"
)

// Listener receives diagnostics from the native library. It matches
// the listener interface of the sensors package, restated here so
// this package builds without cgo.
type Listener interface {
	// OnConfigError reports a problem in a configuration source.
	// file may be empty and line is 1-based.
	OnConfigError(msg, file string, line int)

	// OnFatalError reports an unrecoverable native condition. The
	// process exits right after the callback returns.
	OnFatalError(msg, procedure string)
}

// SlogListener writes diagnostics to an slog.Logger. Configuration
// problems log at Warn, fatal conditions at Error.
type SlogListener struct {
	logger *slog.Logger
}

// NewSlogListener creates a SlogListener that writes to the given
// slog.Logger.
func NewSlogListener(logger *slog.Logger) *SlogListener {
	return &SlogListener{logger: logger}
}

// OnConfigError logs the configuration problem at Warn level.
func (l *SlogListener) OnConfigError(msg, file string, line int) {
	attrs := []slog.Attr{
		slog.String("error", msg),
	}
	if file != "" {
		attrs = append(attrs,
			slog.String("file", file),
			slog.Int("line", line),
		)
	}
	l.logger.LogAttrs(context.Background(), slog.LevelWarn, "sensors config error", attrs...)
}

// OnFatalError logs the condition at Error level. The process is
// about to exit, so this is the last chance to flush context.
func (l *SlogListener) OnFatalError(msg, procedure string) {
	l.logger.LogAttrs(context.Background(), slog.LevelError, "sensors fatal error",
		slog.String("error", msg),
		slog.String("procedure", procedure),
	)
}

// ConfigError is one recorded configuration diagnostic.
type ConfigError struct {
	Msg  string
	File string
	Line int
}

// FatalError is one recorded fatal diagnostic.
type FatalError struct {
	Msg       string
	Procedure string
}

// Recorder captures diagnostics in memory, for tests and for
// surfacing parse problems after a failed initialization. Safe for
// concurrent use.
type Recorder struct {
	mu     sync.Mutex
	config []ConfigError
	fatal  []FatalError
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnConfigError appends the diagnostic to the configuration list.
func (r *Recorder) OnConfigError(msg, file string, line int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = append(r.config, ConfigError{Msg: msg, File: file, Line: line})
}

// OnFatalError appends the diagnostic to the fatal list.
func (r *Recorder) OnFatalError(msg, procedure string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fatal = append(r.fatal, FatalError{Msg: msg, Procedure: procedure})
}

// ConfigErrors returns a copy of the recorded configuration
// diagnostics, in arrival order.
func (r *Recorder) ConfigErrors() []ConfigError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ConfigError(nil), r.config...)
}

// FatalErrors returns a copy of the recorded fatal diagnostics.
func (r *Recorder) FatalErrors() []FatalError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]FatalError(nil), r.fatal...)
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = nil
	r.fatal = nil
}

// Nop is a listener that discards every diagnostic. Installing it
// silences the stderr fallback the sensors package uses when no
// listener is set.
type Nop struct{}

func (Nop) OnConfigError(msg, file string, line int) {}
func (Nop) OnFatalError(msg, procedure string)       {}

// multiListener fans diagnostics out to several listeners.
type multiListener struct {
	listeners []Listener
}

// Multi returns a Listener that forwards every diagnostic to all
// given listeners, in order.
func Multi(listeners ...Listener) Listener {
	return &multiListener{listeners: listeners}
}

func (m *multiListener) OnConfigError(msg, file string, line int) {
	for _, l := range m.listeners {
		l.OnConfigError(msg, file, line)
	}
}

func (m *multiListener) OnFatalError(msg, procedure string) {
	for _, l := range m.listeners {
		l.OnFatalError(msg, procedure)
	}
}

// Compile-time interface satisfaction checks.
var (
	_ Listener = (*SlogListener)(nil)
	_ Listener = (*Recorder)(nil)
	_ Listener = Nop{}
	_ Listener = (*multiListener)(nil)
)
