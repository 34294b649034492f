package value

import (
	"fmt"

	"github.com/lmsensors-go/lmsensors/pkg/kind"
)

// Value is a sensor reading or actuator setting: a raw floating-point
// magnitude tagged with the sub-feature kind that defines its unit
// and semantics. The zero Value is an unknown-kind reading of 0.
type Value struct {
	kind kind.Subfeature
	raw  float64
}

// New returns a Value of the given kind and raw magnitude. Unknown
// kinds are carried through unchanged.
func New(k kind.Subfeature, raw float64) Value {
	return Value{kind: k, raw: raw}
}

// Kind returns the sub-feature kind tag.
func (v Value) Kind() kind.Subfeature { return v.kind }

// Raw returns the unit-free raw magnitude exactly as the native
// library reported it.
func (v Value) Raw() float64 { return v.raw }

// Unit returns the measurement unit implied by the kind.
func (v Value) Unit() kind.Unit { return v.kind.Unit() }

// Bool interprets the value of a boolean-like kind (alarm, beep,
// fault, beep-enable). The second return is false when the kind is
// not boolean-like.
func (v Value) Bool() (bool, bool) {
	if !v.kind.IsBool() {
		return false, false
	}
	return v.raw != 0, true
}

// TemperatureSensor decodes a temp_type value into the physical
// sensor type. The second return is false when the kind is not
// temp_type or the raw value does not denote a sensor type.
func (v Value) TemperatureSensor() (kind.TemperatureSensor, bool) {
	if v.kind != kind.TempType {
		return 0, false
	}
	return kind.TemperatureSensorFromRaw(v.raw)
}

// String renders the value the way sensors(1) would: alarms print
// "ALARM" when raised and nothing when clear, beeps print "BEEP",
// faults print "FAULT", temperature sensor types print their name,
// and scalar quantities print the magnitude followed by the unit
// symbol.
func (v Value) String() string {
	if set, ok := v.Bool(); ok {
		if !set {
			return ""
		}
		switch {
		case v.kind == kind.BeepEnable:
			return "BEEP_ENABLE"
		case v.kind == kind.FanFault || v.kind == kind.TempFault:
			return "FAULT"
		case v.kind == kind.VoltageBeep, v.kind == kind.FanBeep,
			v.kind == kind.TempBeep, v.kind == kind.CurrentBeep,
			v.kind == kind.IntrusionBeep:
			return "BEEP"
		default:
			return "ALARM"
		}
	}

	if ts, ok := v.TemperatureSensor(); ok {
		return ts.String()
	}

	if u := v.Unit(); u != kind.UnitNone {
		return fmt.Sprintf("%.3f %s", v.raw, u)
	}
	return fmt.Sprintf("%.3f", v.raw)
}
