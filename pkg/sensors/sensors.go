//go:build linux && cgo

package sensors

/*
#cgo LDFLAGS: -lsensors

#include <stdio.h>
#include <stdlib.h>
#include <sys/stat.h>
#include <unistd.h>
#include <sensors/sensors.h>
#include <sensors/error.h>

#include "hooks.h"
*/
import "C"

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"unsafe"
)

// Process-wide native library state. The native library serializes
// nothing itself, so every native call in this package runs under
// apiMu. active is the one live handle, nil between Close and the
// next Init; views compare their handle against it before touching
// library-owned memory.
var (
	apiMu      sync.Mutex
	active     *Sensors
	generation uint64
)

// Initializer configures and creates a library handle. The zero
// Initializer uses the library's default configuration search paths
// and no listener.
type Initializer struct {
	configPath string
	configFile *os.File
	listener   Listener
}

// New returns an Initializer with default settings.
func New() *Initializer {
	return &Initializer{}
}

// WithConfigPath sets the configuration file to read during
// initialization. It replaces any configuration source set earlier.
func (in *Initializer) WithConfigPath(path string) *Initializer {
	in.configPath = path
	in.configFile = nil
	return in
}

// WithConfigFile sets an open configuration stream to read during
// initialization. The file stays owned by the caller. It replaces
// any configuration source set earlier.
func (in *Initializer) WithConfigFile(f *os.File) *Initializer {
	in.configFile = f
	in.configPath = ""
	return in
}

// WithListener sets the listener receiving native diagnostics. The
// listener is installed before native initialization starts, because
// configuration errors are reported through it during Init itself.
func (in *Initializer) WithListener(l Listener) *Initializer {
	in.listener = l
	return in
}

// Sensors is a live handle to the initialized native library. All
// chips, features, and sub-features are obtained through it and stay
// valid only until Close.
//
// A handle may be shared across goroutines; reads of enumerated data
// are serialized internally. Init and Close themselves are also safe
// to call concurrently, with at most one handle live at a time.
type Sensors struct {
	// gen distinguishes this handle from every other handle the
	// process ever creates, so a stale view can never pass the
	// aliveness check after a re-initialization.
	gen uint64
}

// Init initializes the native library and returns its handle. It
// fails with ErrAlreadyInitialized when another handle is live, with
// a wrapped *os* error when the configuration source cannot be
// opened, and with a NativeError when native setup rejects the
// configuration (see IsConfigParse).
func (in *Initializer) Init() (*Sensors, error) {
	fp, err := in.openConfig()
	if err != nil {
		return nil, err
	}
	if fp != nil {
		// The configuration is fully parsed during sensors_init, so
		// the stream is not needed afterwards.
		defer C.fclose(fp)
	}

	apiMu.Lock()
	defer apiMu.Unlock()

	if active != nil {
		return nil, ErrAlreadyInitialized
	}

	// Hooks must be live before sensors_init: parse errors are
	// reported through them synchronously.
	setListener(in.listener)
	C.lmsensors_install_hooks()

	if r := C.sensors_init(fp); r != 0 {
		C.lmsensors_restore_hooks()
		setListener(nil)
		return nil, newNativeError("sensors_init", r)
	}

	generation++
	active = &Sensors{gen: generation}
	return active, nil
}

// openConfig opens the configured source as a C stream, or returns
// nil to use the library's default search paths.
func (in *Initializer) openConfig() (*C.FILE, error) {
	switch {
	case in.configPath != "":
		return openConfigPath(in.configPath)
	case in.configFile != nil:
		return openConfigFile(in.configFile)
	default:
		return nil, nil
	}
}

func openConfigPath(path string) (*C.FILE, error) {
	if strings.IndexByte(path, 0) >= 0 {
		return nil, fmt.Errorf("open config %q: %w", path, ErrNulByte)
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))
	mode := C.CString("r")
	defer C.free(unsafe.Pointer(mode))

	fp, err := C.fopen(cPath, mode)
	if fp == nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}

	// fopen happily opens directories for reading; sensors_init
	// would then fail with a confusing parse error.
	var st C.struct_stat
	if C.fstat(C.fileno(fp), &st) != 0 || st.st_mode&C.S_IFMT == C.S_IFDIR {
		C.fclose(fp)
		return nil, fmt.Errorf("open config %s: is a directory", path)
	}
	return fp, nil
}

func openConfigFile(f *os.File) (*C.FILE, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat config stream: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config stream %s: is a directory", f.Name())
	}

	// Duplicate the descriptor so the C stream and the caller's
	// *os.File have independent lifetimes.
	fd, err := C.dup(C.int(f.Fd()))
	if fd < 0 {
		return nil, fmt.Errorf("dup config stream: %w", err)
	}

	mode := C.CString("r")
	defer C.free(unsafe.Pointer(mode))

	fp, err := C.fdopen(fd, mode)
	if fp == nil {
		C.close(fd)
		return nil, fmt.Errorf("fdopen config stream: %w", err)
	}
	return fp, nil
}

// Close tears the native library down, restores the previous error
// hooks, and invalidates every view obtained from this handle. A
// second Close returns ErrClosed. Creating a new handle afterwards
// reinitializes the library from scratch.
func (s *Sensors) Close() error {
	apiMu.Lock()
	defer apiMu.Unlock()

	if active != s {
		return ErrClosed
	}

	C.sensors_cleanup()
	C.lmsensors_restore_hooks()
	setListener(nil)
	active = nil
	return nil
}

// ensureAlive reports whether this handle is still the live one.
// Callers must hold apiMu.
func (s *Sensors) ensureAlive() error {
	if active != s {
		return ErrClosed
	}
	return nil
}

// Version returns the native library version string, empty if the
// library does not expose one.
func (s *Sensors) Version() string {
	if C.libsensors_version == nil {
		return ""
	}
	return C.GoString(C.libsensors_version)
}
