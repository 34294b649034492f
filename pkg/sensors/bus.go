//go:build linux && cgo

package sensors

/*
#include <sensors/sensors.h>
#include <sensors/error.h>
*/
import "C"

import (
	"strconv"

	"github.com/lmsensors-go/lmsensors/pkg/kind"
)

// Bus is the typed identity of the hardware bus a chip is attached
// to: a bus type plus a bus number.
type Bus struct {
	h    *Sensors
	kind kind.Bus
	nr   int16
}

// Kind returns the bus type.
func (b Bus) Kind() kind.Bus { return b.kind }

// Number returns the bus number, or one of the kind.BusNumber*
// sentinels.
func (b Bus) Number() int16 { return b.nr }

// AdapterName returns the adapter name the library knows for this
// bus, e.g. "PCI adapter". Fails with ErrNotFound when the library
// has no name for it.
func (b Bus) AdapterName() (string, error) {
	apiMu.Lock()
	defer apiMu.Unlock()
	if err := b.h.ensureAlive(); err != nil {
		return "", err
	}

	var id C.struct_sensors_bus_id
	id._type = C.short(b.kind)
	id.nr = C.short(b.nr)

	p := C.sensors_get_adapter_name(&id)
	if p == nil {
		return "", ErrNotFound
	}
	return C.GoString(p), nil
}

// String returns the adapter name when available, otherwise
// "type:number".
func (b Bus) String() string {
	if name, err := b.AdapterName(); err == nil {
		return name
	}
	return b.kind.String() + ":" + strconv.Itoa(int(b.nr))
}
