//go:build linux && cgo

package sensors

// This file holds the Go side of the error-callback bridge. The C
// side (hooks.c) points the library's global hook variables at thin C
// trampolines that forward here. Files with exported functions may
// only declare in their preamble, hence the split.

/*
#include <stddef.h>
*/
import "C"

import "os"

// lossyGoString converts a possibly-nil C string, substituting def
// for nil.
func lossyGoString(p *C.char, def string) string {
	if p == nil {
		return def
	}
	return C.GoString(p)
}

func dispatchConfigError(msg, file string, line int) {
	if line < 1 {
		line = 1
	}
	l := currentListener()
	if l == nil {
		l = stderrListener{}
	}
	l.OnConfigError(msg, file, line)
}

//export goParseError
func goParseError(msg *C.char, line C.int) {
	dispatchConfigError(lossyGoString(msg, "<unknown error>"), "", int(line))
}

//export goParseErrorWfn
func goParseErrorWfn(msg, file *C.char, line C.int) {
	dispatchConfigError(lossyGoString(msg, "<unknown error>"), lossyGoString(file, ""), int(line))
}

//export goFatalError
func goFatalError(procedure, msg *C.char) {
	l := currentListener()
	if l == nil {
		l = stderrListener{}
	}
	l.OnFatalError(lossyGoString(msg, "<unknown error>"), lossyGoString(procedure, "<unknown procedure>"))

	// The native library does not support returning from its fatal
	// error hook.
	os.Exit(1)
}
