// Package sensors is a safe access layer over libsensors, the
// user-space library of the lm-sensors project. It exposes the chips,
// features, and sub-features the kernel hardware-monitoring drivers
// detect, with enforced handle lifetimes and typed errors in place of
// the native library's global state and C-style status codes.
//
// # Lifecycle
//
// The native library keeps process-wide mutable state: one parsed
// configuration tree and one set of global error-callback hooks. This
// package therefore allows at most one live handle per process. A
// handle is built with an Initializer and released with Close:
//
//	s, err := sensors.New().WithConfigPath("/etc/sensors3.conf").Init()
//	if err != nil { ... }
//	defer s.Close()
//
// A second Init while a handle is live fails with
// ErrAlreadyInitialized. Closing the handle runs the native cleanup
// and invalidates every view obtained from it; later calls through
// stale views fail with ErrClosed instead of dereferencing freed
// library memory.
//
// # Views
//
// Chips, features, and sub-features are non-owning views into arrays
// the native library owns:
//
//	it := s.Chips(nil)
//	for it.Next() {
//		chip := it.Chip()
//		feats := chip.Features()
//		for feats.Next() {
//			// ...
//		}
//	}
//
// Enumeration is lazy and finite; the native list end is reported by
// the iterator returning false, never as an error. Views are cheap
// values: identifying fields are copied out of the native structs at
// yield time, and only value reads and writes go back through the
// library.
//
// # Diagnostics
//
// The native library reports configuration-parse and fatal errors
// through global callback hooks rather than return values. Install a
// Listener on the Initializer to intercept them; without one the
// messages go to standard error. See the sensorlog package for
// ready-made listeners.
//
// # Platform
//
// The package is only available on Linux with cgo enabled; on every
// other target it has no exported surface.
package sensors
