package kind

import (
	"math"
	"strconv"
)

// TemperatureSensor is the physical sensor type reported by a
// temp_type sub-feature.
type TemperatureSensor int32

const (
	// TemperatureSensorDisabled means the sensor is disabled.
	TemperatureSensorDisabled TemperatureSensor = 0

	// TemperatureSensorCPUDiode is a CPU embedded diode.
	TemperatureSensorCPUDiode TemperatureSensor = 1

	// TemperatureSensorTransistor is a 3904 transistor.
	TemperatureSensorTransistor TemperatureSensor = 2

	// TemperatureSensorThermalDiode is a thermal diode.
	TemperatureSensorThermalDiode TemperatureSensor = 3

	// TemperatureSensorThermistor is a thermistor.
	TemperatureSensorThermistor TemperatureSensor = 4

	// TemperatureSensorAMDAMDSI is an AMD AMDSI interface.
	TemperatureSensorAMDAMDSI TemperatureSensor = 5

	// TemperatureSensorIntelPECI is an Intel PECI interface.
	TemperatureSensorIntelPECI TemperatureSensor = 6
)

// TemperatureSensorFromRaw decodes the raw floating-point value of a
// temp_type sub-feature. Drivers report the type as a small integer,
// but some report out-of-range magic values that the sensors tool
// treats as thermistors; this follows the same convention. The second
// return is false when the value does not denote a sensor type.
func TemperatureSensorFromRaw(raw float64) (TemperatureSensor, bool) {
	if math.IsNaN(raw) {
		return 0, false
	}
	if math.IsInf(raw, 0) {
		if raw > 0 {
			return TemperatureSensorThermistor, true
		}
		return 0, false
	}

	// The raw value is rounded before the range checks, so -0.4
	// decodes as disabled and 1000.3 is out of range.
	r := math.Round(raw)
	switch {
	case r < 0:
		return 0, false
	case r > 1000:
		return TemperatureSensorThermistor, true
	}
	v := TemperatureSensor(r)
	if v > TemperatureSensorIntelPECI {
		return 0, false
	}
	return v, true
}

// String returns the sensor type name.
func (t TemperatureSensor) String() string {
	switch t {
	case TemperatureSensorDisabled:
		return "disabled"
	case TemperatureSensorCPUDiode:
		return "CPU diode"
	case TemperatureSensorTransistor:
		return "transistor"
	case TemperatureSensorThermalDiode:
		return "thermal diode"
	case TemperatureSensorThermistor:
		return "thermistor"
	case TemperatureSensorAMDAMDSI:
		return "AMD AMDSI"
	case TemperatureSensorIntelPECI:
		return "Intel PECI"
	default:
		return "sensor(" + strconv.Itoa(int(t)) + ")"
	}
}
