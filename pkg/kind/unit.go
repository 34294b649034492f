package kind

// Unit is the measurement unit of a sub-feature value.
type Unit uint8

const (
	// UnitNone marks unit-free values: flags, divisors, type codes.
	UnitNone Unit = iota

	// UnitVolt is volts.
	UnitVolt

	// UnitAmp is amperes.
	UnitAmp

	// UnitWatt is watts.
	UnitWatt

	// UnitJoule is joules.
	UnitJoule

	// UnitCelsius is degrees Celsius.
	UnitCelsius

	// UnitSecond is seconds.
	UnitSecond

	// UnitRPM is rotations per minute.
	UnitRPM

	// UnitPercent is percent.
	UnitPercent
)

// String returns the unit symbol, empty for UnitNone.
func (u Unit) String() string {
	switch u {
	case UnitVolt:
		return "V"
	case UnitAmp:
		return "A"
	case UnitWatt:
		return "W"
	case UnitJoule:
		return "J"
	case UnitCelsius:
		return "C"
	case UnitSecond:
		return "s"
	case UnitRPM:
		return "RPM"
	case UnitPercent:
		return "%"
	default:
		return ""
	}
}
