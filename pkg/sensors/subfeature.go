//go:build linux && cgo

package sensors

/*
#include <sensors/sensors.h>
#include <sensors/error.h>
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"

	"github.com/lmsensors-go/lmsensors/pkg/kind"
	"github.com/lmsensors-go/lmsensors/pkg/value"
)

// The native value calls, held in variables so tests can observe the
// sub-feature number they are addressed with.
var (
	nativeGetValue = func(chip unsafe.Pointer, nr int32) (float64, int32) {
		var out C.double
		r := C.sensors_get_value((*C.struct_sensors_chip_name)(chip), C.int(nr), &out)
		return float64(out), int32(r)
	}
	nativeSetValue = func(chip unsafe.Pointer, nr int32, v float64) int32 {
		return int32(C.sensors_set_value((*C.struct_sensors_chip_name)(chip), C.int(nr), C.double(v)))
	}
)

// Subfeature is a view over one readable or writable quantity of a
// feature, e.g. the input value or the maximum limit of a temperature
// sensor. It borrows from its parent chip and stays valid until the
// handle is closed.
type Subfeature struct {
	h    *Sensors
	chip *C.struct_sensors_chip_name

	name    string
	hasName bool
	number  int32
	mapping int32
	kindv   kind.Subfeature
	access  kind.Access
}

func newSubfeature(h *Sensors, chip *C.struct_sensors_chip_name, p *C.struct_sensors_subfeature) Subfeature {
	sf := Subfeature{
		h:       h,
		chip:    chip,
		number:  int32(p.number),
		mapping: int32(p.mapping),
		kindv:   kind.Subfeature(p._type),
		access:  kind.Access(p.flags),
	}
	if p.name != nil {
		sf.name = C.GoString(p.name)
		sf.hasName = true
	}
	return sf
}

// Name returns the sub-feature's sysfs-style name, e.g. "temp1_max".
// It fails with ErrNoName when the native descriptor carries none and
// with ErrInvalidUTF8 when the name does not decode.
func (sf Subfeature) Name() (string, error) {
	if !sf.hasName {
		return "", ErrNoName
	}
	if !utf8.ValidString(sf.name) {
		return "", ErrInvalidUTF8
	}
	return sf.name, nil
}

// Number returns the sub-feature number within its chip. This is the
// number Raw and SetRaw address values by.
func (sf Subfeature) Number() int32 { return sf.number }

// Mapping returns the number of the feature this sub-feature belongs
// to.
func (sf Subfeature) Mapping() int32 { return sf.mapping }

// Kind returns the sub-feature type. Codes this package does not know
// pass through as-is; see kind.Subfeature.Known.
func (sf Subfeature) Kind() kind.Subfeature { return sf.kindv }

// Access returns the read, write and compute-mapping flags.
func (sf Subfeature) Access() kind.Access { return sf.access }

// Raw reads the current value as the plain number the library
// reports, with scaling rules already applied. Fails with
// ErrNotReadable when the access flags do not permit reading.
func (sf Subfeature) Raw() (float64, error) {
	if !sf.access.CanRead() {
		return 0, ErrNotReadable
	}

	apiMu.Lock()
	defer apiMu.Unlock()
	if err := sf.h.ensureAlive(); err != nil {
		return 0, err
	}

	// Values are addressed by the sub-feature's own number, not by
	// the number of the feature it maps to.
	out, r := nativeGetValue(unsafe.Pointer(sf.chip), sf.number)
	if r != 0 {
		return 0, newNativeError("sensors_get_value", C.int(r))
	}
	return out, nil
}

// SetRaw writes a plain value to the sub-feature. Fails with
// ErrNotWritable when the access flags do not permit writing; that
// check happens before any native call.
func (sf Subfeature) SetRaw(v float64) error {
	if !sf.access.CanWrite() {
		return ErrNotWritable
	}

	apiMu.Lock()
	defer apiMu.Unlock()
	if err := sf.h.ensureAlive(); err != nil {
		return err
	}

	if r := nativeSetValue(unsafe.Pointer(sf.chip), sf.number, v); r != 0 {
		return newNativeError("sensors_set_value", C.int(r))
	}
	return nil
}

// Value reads the current value tagged with the sub-feature's kind,
// so callers can interpret booleans and temperature sensor types
// without tracking the kind separately.
func (sf Subfeature) Value() (value.Value, error) {
	raw, err := sf.Raw()
	if err != nil {
		return value.Value{}, err
	}
	return value.New(sf.kindv, raw), nil
}

// Set writes a tagged value. Fails with ErrKindMismatch when the
// value was built for a different sub-feature kind.
func (sf Subfeature) Set(v value.Value) error {
	if v.Kind() != sf.kindv {
		return ErrKindMismatch
	}
	return sf.SetRaw(v.Raw())
}

// String returns the sub-feature name, or the kind's name when the
// descriptor carries none.
func (sf Subfeature) String() string {
	if sf.hasName {
		return sf.name
	}
	return sf.kindv.String()
}

// SubfeatureIter enumerates the sub-features of one feature. Lazy and
// finite; the sequence ends when the native enumeration returns its
// end-of-list marker.
type SubfeatureIter struct {
	h       *Sensors
	chip    *C.struct_sensors_chip_name
	feature *C.struct_sensors_feature
	state   C.int
	cur     Subfeature
	err     error
}

// Next advances to the next sub-feature, returning false at the end
// of the sequence or on a dead handle.
func (it *SubfeatureIter) Next() bool {
	apiMu.Lock()
	defer apiMu.Unlock()
	if err := it.h.ensureAlive(); err != nil {
		it.err = err
		return false
	}
	p := C.sensors_get_all_subfeatures(it.chip, it.feature, &it.state)
	if p == nil {
		return false
	}
	it.cur = newSubfeature(it.h, it.chip, p)
	return true
}

// Subfeature returns the sub-feature at the current position. Valid
// after a Next call that returned true.
func (it *SubfeatureIter) Subfeature() Subfeature { return it.cur }

// Err returns the error that stopped iteration early, nil after a
// normal end of sequence.
func (it *SubfeatureIter) Err() error { return it.err }
