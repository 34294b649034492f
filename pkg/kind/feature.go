package kind

import (
	"math"
	"strconv"
)

// Feature identifies the type of a sensor or actuator function on a
// chip. The values are the SENSORS_FEATURE_* codes.
type Feature uint32

const (
	// FeatureVoltage is a voltage input ("inN").
	FeatureVoltage Feature = 0x00

	// FeatureFan is a fan tachometer ("fanN").
	FeatureFan Feature = 0x01

	// FeatureTemperature is a temperature sensor ("tempN").
	FeatureTemperature Feature = 0x02

	// FeaturePower is a power meter ("powerN").
	FeaturePower Feature = 0x03

	// FeatureEnergy is an energy meter ("energyN").
	FeatureEnergy Feature = 0x04

	// FeatureCurrent is a current input ("currN").
	FeatureCurrent Feature = 0x05

	// FeatureHumidity is a humidity sensor ("humidityN").
	FeatureHumidity Feature = 0x06

	// FeatureVoltageID is the CPU voltage ID ("vid").
	FeatureVoltageID Feature = 0x10

	// FeatureIntrusion is a chassis intrusion detector ("intrusionN").
	FeatureIntrusion Feature = 0x11

	// FeatureBeepEnable is the global beep enable switch.
	FeatureBeepEnable Feature = 0x18

	// FeatureUnknown is the native library's explicit unknown marker.
	FeatureUnknown Feature = math.MaxInt32
)

// Known returns true if the code is one of the documented feature
// types. FeatureUnknown itself counts as known: it is a value the
// native library deliberately reports.
func (f Feature) Known() bool {
	switch f {
	case FeatureVoltage, FeatureFan, FeatureTemperature, FeaturePower,
		FeatureEnergy, FeatureCurrent, FeatureHumidity,
		FeatureVoltageID, FeatureIntrusion, FeatureBeepEnable,
		FeatureUnknown:
		return true
	}
	return false
}

// String returns the feature type name in sysfs-style notation.
func (f Feature) String() string {
	switch f {
	case FeatureVoltage:
		return "in"
	case FeatureFan:
		return "fan"
	case FeatureTemperature:
		return "temp"
	case FeaturePower:
		return "power"
	case FeatureEnergy:
		return "energy"
	case FeatureCurrent:
		return "curr"
	case FeatureHumidity:
		return "humidity"
	case FeatureVoltageID:
		return "vid"
	case FeatureIntrusion:
		return "intrusion"
	case FeatureBeepEnable:
		return "beep_enable"
	case FeatureUnknown:
		return "unknown"
	default:
		return "feature(" + strconv.FormatUint(uint64(f), 10) + ")"
	}
}
