//go:build linux && cgo

package sensors

/*
#include <sensors/sensors.h>
#include <sensors/error.h>
*/
import "C"

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrAlreadyInitialized is returned by Init when another handle
	// is live in this process.
	ErrAlreadyInitialized = errors.New("library already initialized")

	// ErrClosed is returned when a view is used after the handle it
	// was obtained from was closed.
	ErrClosed = errors.New("library handle closed")

	// ErrNotReadable is returned by Raw on a sub-feature whose flags
	// do not include read access.
	ErrNotReadable = errors.New("sub-feature is not readable")

	// ErrNotWritable is returned by SetRaw on a sub-feature whose
	// flags do not include write access.
	ErrNotWritable = errors.New("sub-feature is not writable")

	// ErrNotFound is returned by lookups with no matching entry.
	ErrNotFound = errors.New("not found")

	// ErrNoName is returned when a chip, feature, or sub-feature
	// carries no name or label.
	ErrNoName = errors.New("name not available")

	// ErrInvalidUTF8 is returned when a native string is not valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

	// ErrNulByte is returned when a string destined for a native
	// call contains an embedded NUL byte.
	ErrNulByte = errors.New("text contains a NUL byte")

	// ErrTruncated is returned when the native library reports a
	// rendered name longer than it promised.
	ErrTruncated = errors.New("chip name truncated")

	// ErrKindMismatch is returned by Set when the value's kind tag
	// does not match the target sub-feature.
	ErrKindMismatch = errors.New("value kind does not match sub-feature")
)

// Native status codes from <sensors/error.h>.
const (
	CodeWildcards   = 1  // wildcard found in chip name
	CodeNoEntry     = 2  // no such sub-feature known
	CodeAccessRead  = 3  // can't read
	CodeKernel      = 4  // kernel interface error
	CodeDivZero     = 5  // divide by zero
	CodeChipName    = 6  // can't parse chip name
	CodeBusName     = 7  // can't parse bus name
	CodeParse       = 8  // general parse error
	CodeAccessWrite = 9  // can't write
	CodeIO          = 10 // I/O error
	CodeRecursion   = 11 // evaluation recurses too deep
)

// NativeError wraps a nonzero status code returned by a native
// library call. Op names the native entry point, Code is the positive
// status code, and Description is the library's own text for it.
type NativeError struct {
	Op          string
	Code        int
	Description string
}

// Error implements the error interface.
func (e *NativeError) Error() string {
	return fmt.Sprintf("%s: %s (code %d)", e.Op, e.Description, e.Code)
}

// newNativeError converts a native status code into a NativeError,
// looking up the library's description text. sensors_strerror is safe
// to call regardless of initialization state.
func newNativeError(op string, r C.int) *NativeError {
	code := int(r)
	if code < 0 {
		code = -code
	}
	return &NativeError{
		Op:          op,
		Code:        code,
		Description: C.GoString(C.sensors_strerror(r)),
	}
}

// IsConfigParse reports whether err is an initialization failure
// caused by a malformed configuration source. File and line context
// for these failures arrives through the Listener channel, not the
// returned error.
func IsConfigParse(err error) bool {
	var ne *NativeError
	if !errors.As(err, &ne) {
		return false
	}
	if ne.Op != "sensors_init" {
		return false
	}
	switch ne.Code {
	case CodeChipName, CodeBusName, CodeParse, CodeRecursion:
		return true
	}
	return false
}
