//go:build linux && cgo

package sensors

import (
	"fmt"
	"os"
	"sync"
)

// Listener receives the diagnostics the native library reports
// through its global callback hooks. Both callbacks are invoked
// synchronously from within a native call, possibly during Init
// itself while the configuration is being parsed. Implementations
// must not call back into this package.
type Listener interface {
	// OnConfigError is called for each configuration parsing error.
	// file is the configuration file name, empty when unknown, and
	// line is 1-based.
	OnConfigError(msg, file string, line int)

	// OnFatalError is called when the native library hits an
	// unrecoverable condition, e.g. out of memory. The native
	// contract requires the process to terminate after the callback
	// returns.
	OnFatalError(msg, procedure string)
}

// The hook mechanism is global, so a single slot holds the listener
// of the live handle. Guarded by its own mutex because the callbacks
// fire while the API lock is already held by the initiating call.
var (
	listenerMu     sync.RWMutex
	activeListener Listener
)

func setListener(l Listener) {
	listenerMu.Lock()
	activeListener = l
	listenerMu.Unlock()
}

func currentListener() Listener {
	listenerMu.RLock()
	defer listenerMu.RUnlock()
	return activeListener
}

// stderrListener is the fallback when no listener is installed,
// matching the native library's own default of printing to stderr.
type stderrListener struct{}

func (stderrListener) OnConfigError(msg, file string, line int) {
	if file != "" {
		fmt.Fprintf(os.Stderr, "sensors config error: %s, at %s line %d\n", msg, file, line)
	} else {
		fmt.Fprintf(os.Stderr, "sensors config error: %s, at line %d\n", msg, line)
	}
}

func (stderrListener) OnFatalError(msg, procedure string) {
	fmt.Fprintf(os.Stderr, "sensors fatal error: %s, in %s\n", msg, procedure)
}
