//go:build linux && cgo

package sensors

/*
#include <stdlib.h>
#include <sensors/sensors.h>
#include <sensors/error.h>
*/
import "C"

import (
	"strconv"
	"strings"
	"unsafe"

	"github.com/lmsensors-go/lmsensors/pkg/kind"
)

// Chip is a view over one detected hardware-monitoring chip,
// identified by bus, name prefix, and logical address. Chips obtained
// from iteration borrow a slot in the library's internal chip list
// and stay valid until the handle is closed; chips obtained from
// ParseChipName own their native struct and must be released with
// Close.
type Chip struct {
	h     *Sensors
	ptr   *C.struct_sensors_chip_name
	owned bool

	prefix  string
	path    string
	addr    int32
	busKind kind.Bus
	busNr   int16
}

// newChip copies the identifying fields out of the native struct.
func newChip(h *Sensors, p *C.struct_sensors_chip_name, owned bool) Chip {
	c := Chip{
		h:       h,
		ptr:     p,
		owned:   owned,
		addr:    int32(p.addr),
		busKind: kind.Bus(p.bus._type),
		busNr:   int16(p.bus.nr),
	}
	if p.prefix != nil {
		c.prefix = C.GoString(p.prefix)
	}
	if p.path != nil {
		c.path = C.GoString(p.path)
	}
	return c
}

// AddressAny is the wildcard address of chips parsed from a name
// pattern without an explicit address.
const AddressAny int32 = -1

// Prefix returns the chip name prefix, e.g. "k10temp". Empty for a
// wildcard pattern chip.
func (c Chip) Prefix() string { return c.prefix }

// Path returns the filesystem path of the chip's driver entry, empty
// for chips not tied to one, e.g. virtual chips or chips parsed from
// a bare name string.
func (c Chip) Path() string { return c.path }

// Address returns the chip's logical address on its bus. The second
// return is false when the address is the AddressAny wildcard.
func (c Chip) Address() (int32, bool) {
	return c.addr, c.addr != AddressAny
}

// Bus returns the bus the chip is attached to.
func (c Chip) Bus() Bus {
	return Bus{h: c.h, kind: c.busKind, nr: c.busNr}
}

// Name renders the chip's identity into the library's canonical
// display string, e.g. "k10temp-pci-00c3".
func (c Chip) Name() (string, error) {
	apiMu.Lock()
	defer apiMu.Unlock()
	if err := c.h.ensureAlive(); err != nil {
		return "", err
	}

	// First call sizes the buffer, second call fills it.
	n := C.sensors_snprintf_chip_name(nil, 0, c.ptr)
	if n < 0 {
		return "", newNativeError("sensors_snprintf_chip_name", n)
	}
	buf := C.malloc(C.size_t(n) + 1)
	defer C.free(buf)

	n2 := C.sensors_snprintf_chip_name((*C.char)(buf), C.size_t(n)+1, c.ptr)
	if n2 < 0 {
		return "", newNativeError("sensors_snprintf_chip_name", n2)
	}
	if n2 > n {
		return "", ErrTruncated
	}
	return C.GoStringN((*C.char)(buf), n2), nil
}

// Features returns an iterator over the sensor and actuator functions
// this chip provides.
func (c Chip) Features() *FeatureIter {
	return &FeatureIter{h: c.h, chip: c.ptr}
}

// DoChipSets executes all set statements of the loaded configuration
// that apply to this chip.
func (c Chip) DoChipSets() error {
	apiMu.Lock()
	defer apiMu.Unlock()
	if err := c.h.ensureAlive(); err != nil {
		return err
	}
	if r := C.sensors_do_chip_sets(c.ptr); r != 0 {
		return newNativeError("sensors_do_chip_sets", r)
	}
	return nil
}

// Close releases the native struct of a chip created by
// ParseChipName. Closing a chip obtained from iteration is a no-op:
// its storage belongs to the library.
func (c *Chip) Close() error {
	if !c.owned || c.ptr == nil {
		return nil
	}
	apiMu.Lock()
	defer apiMu.Unlock()
	C.sensors_free_chip_name(c.ptr)
	C.free(unsafe.Pointer(c.ptr))
	c.ptr = nil
	return nil
}

// String returns the canonical display name, falling back to a
// prefix/bus/address rendering when the handle is gone.
func (c Chip) String() string {
	if name, err := c.Name(); err == nil {
		return name
	}
	var b strings.Builder
	if c.prefix == "" {
		b.WriteString("*")
	} else {
		b.WriteString(c.prefix)
	}
	b.WriteString("-")
	b.WriteString(c.busKind.String())
	b.WriteString("-")
	b.WriteString(strconv.FormatInt(int64(c.addr), 16))
	return b.String()
}

// ParseChipName parses a chip name string, e.g. "k10temp-pci-00c3" or
// "coretemp-*", into an independently owned Chip usable as a match
// pattern. A malformed name fails with a NativeError from
// sensors_parse_chip_name. The caller releases the result with Close.
func (s *Sensors) ParseChipName(name string) (*Chip, error) {
	if strings.IndexByte(name, 0) >= 0 {
		return nil, ErrNulByte
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	apiMu.Lock()
	defer apiMu.Unlock()
	if err := s.ensureAlive(); err != nil {
		return nil, err
	}

	// The native parser assumes a zero-initialized output struct.
	raw := (*C.struct_sensors_chip_name)(C.calloc(1, C.sizeof_struct_sensors_chip_name))
	if r := C.sensors_parse_chip_name(cName, raw); r != 0 {
		C.free(unsafe.Pointer(raw))
		return nil, newNativeError("sensors_parse_chip_name", r)
	}

	c := newChip(s, raw, true)
	return &c, nil
}

// ChipIter enumerates detected chips. The sequence is lazy and
// finite; it ends when the native enumeration returns its end-of-list
// marker. Restarting requires a new iterator.
type ChipIter struct {
	h     *Sensors
	match *C.struct_sensors_chip_name
	state C.int
	cur   Chip
	err   error
}

// Chips returns an iterator over all detected chips matching the
// given pattern. A nil match yields every chip. The pattern chip,
// typically from ParseChipName, must stay open for the lifetime of
// the iterator.
func (s *Sensors) Chips(match *Chip) *ChipIter {
	it := &ChipIter{h: s}
	if match != nil {
		it.match = match.ptr
	}
	return it
}

// Next advances to the next chip, returning false at the end of the
// sequence or on a dead handle. End-of-list is not an error.
func (it *ChipIter) Next() bool {
	apiMu.Lock()
	defer apiMu.Unlock()
	if err := it.h.ensureAlive(); err != nil {
		it.err = err
		return false
	}
	p := C.sensors_get_detected_chips(it.match, &it.state)
	if p == nil {
		return false
	}
	it.cur = newChip(it.h, p, false)
	return true
}

// Chip returns the chip at the current position. Valid after a Next
// call that returned true.
func (it *ChipIter) Chip() Chip { return it.cur }

// Err returns the error that stopped iteration early, nil after a
// normal end of sequence.
func (it *ChipIter) Err() error { return it.err }
