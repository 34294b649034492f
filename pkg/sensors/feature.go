//go:build linux && cgo

package sensors

/*
#include <stdlib.h>
#include <sensors/sensors.h>
#include <sensors/error.h>
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"

	"github.com/lmsensors-go/lmsensors/pkg/kind"
)

// Feature is a view over one named capability of a chip, e.g. one
// temperature sensor. It borrows from its parent chip and stays valid
// until the handle is closed.
type Feature struct {
	h    *Sensors
	chip *C.struct_sensors_chip_name
	ptr  *C.struct_sensors_feature

	name    string
	hasName bool
	number  int32
	kindv   kind.Feature
}

func newFeature(h *Sensors, chip *C.struct_sensors_chip_name, p *C.struct_sensors_feature) Feature {
	f := Feature{
		h:      h,
		chip:   chip,
		ptr:    p,
		number: int32(p.number),
		kindv:  kind.Feature(p._type),
	}
	if p.name != nil {
		f.name = C.GoString(p.name)
		f.hasName = true
	}
	return f
}

// Name returns the feature's sysfs-style name, e.g. "temp1". It fails
// with ErrNoName when the native descriptor carries none and with
// ErrInvalidUTF8 when the name does not decode.
func (f Feature) Name() (string, error) {
	if !f.hasName {
		return "", ErrNoName
	}
	if !utf8.ValidString(f.name) {
		return "", ErrInvalidUTF8
	}
	return f.name, nil
}

// Number returns the feature number within its chip.
func (f Feature) Number() int32 { return f.number }

// Kind returns the feature type. Codes this package does not know
// pass through as-is; see kind.Feature.Known.
func (f Feature) Kind() kind.Feature { return f.kindv }

// Label returns the human-readable label the configuration assigns to
// this feature, falling back to the feature name when no label is
// set. Fails with ErrNoName when the library cannot produce one.
func (f Feature) Label() (string, error) {
	apiMu.Lock()
	defer apiMu.Unlock()
	if err := f.h.ensureAlive(); err != nil {
		return "", err
	}

	p := C.sensors_get_label(f.chip, f.ptr)
	if p == nil {
		return "", ErrNoName
	}
	label := C.GoString(p)
	C.free(unsafe.Pointer(p))

	if !utf8.ValidString(label) {
		return "", ErrInvalidUTF8
	}
	return label, nil
}

// Subfeatures returns an iterator over the readable and writable
// quantities under this feature.
func (f Feature) Subfeatures() *SubfeatureIter {
	return &SubfeatureIter{h: f.h, chip: f.chip, feature: f.ptr}
}

// SubfeatureByKind looks the sub-feature of the given type up
// directly, without a full enumeration. Fails with ErrNotFound when
// the feature has no sub-feature of that type.
func (f Feature) SubfeatureByKind(k kind.Subfeature) (Subfeature, error) {
	apiMu.Lock()
	defer apiMu.Unlock()
	if err := f.h.ensureAlive(); err != nil {
		return Subfeature{}, err
	}

	p := C.sensors_get_subfeature(f.chip, f.ptr, C.sensors_subfeature_type(k))
	if p == nil {
		return Subfeature{}, ErrNotFound
	}
	return newSubfeature(f.h, f.chip, p), nil
}

// String returns the label when available, otherwise the name.
func (f Feature) String() string {
	if label, err := f.Label(); err == nil {
		return label
	}
	return f.name
}

// FeatureIter enumerates the features of one chip. Lazy and finite;
// the sequence ends when the native enumeration returns its
// end-of-list marker.
type FeatureIter struct {
	h     *Sensors
	chip  *C.struct_sensors_chip_name
	state C.int
	cur   Feature
	err   error
}

// Next advances to the next feature, returning false at the end of
// the sequence or on a dead handle.
func (it *FeatureIter) Next() bool {
	apiMu.Lock()
	defer apiMu.Unlock()
	if err := it.h.ensureAlive(); err != nil {
		it.err = err
		return false
	}
	p := C.sensors_get_features(it.chip, &it.state)
	if p == nil {
		return false
	}
	it.cur = newFeature(it.h, it.chip, p)
	return true
}

// Feature returns the feature at the current position. Valid after a
// Next call that returned true.
func (it *FeatureIter) Feature() Feature { return it.cur }

// Err returns the error that stopped iteration early, nil after a
// normal end of sequence.
func (it *FeatureIter) Err() error { return it.err }
