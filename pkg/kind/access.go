package kind

// Access is the bitmap of capability flags attached to a sub-feature.
// The bits are the SENSORS_MODE_R, SENSORS_MODE_W and
// SENSORS_COMPUTE_MAPPING flags.
type Access uint32

const (
	// AccessRead marks the sub-feature readable, e.g. sensor data.
	AccessRead Access = 1 << iota

	// AccessWrite marks the sub-feature writable, e.g. an actuator
	// value or a threshold.
	AccessWrite

	// AccessComputeMapping marks the value as affected by the
	// computation rules of the main feature.
	AccessComputeMapping
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// ComputeMapping returns true if the compute-mapping flag is set.
func (a Access) ComputeMapping() bool { return a&AccessComputeMapping != 0 }

// String returns the access flags as a compact string.
func (a Access) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if a.ComputeMapping() {
		s += "C"
	}
	if s == "" {
		return "-"
	}
	return s
}
