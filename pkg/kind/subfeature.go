package kind

import (
	"math"
	"strconv"
)

// Subfeature identifies the type of one readable or writable quantity
// under a feature. The values are the SENSORS_SUBFEATURE_* codes; the
// owning feature type is encoded in bits 8 and up.
type Subfeature uint32

// Voltage sub-features.
const (
	VoltageInput         Subfeature = 0x000
	VoltageMin           Subfeature = 0x001
	VoltageMax           Subfeature = 0x002
	VoltageLCrit         Subfeature = 0x003
	VoltageCrit          Subfeature = 0x004
	VoltageAverage       Subfeature = 0x005
	VoltageLowest        Subfeature = 0x006
	VoltageHighest       Subfeature = 0x007
	VoltageAlarm         Subfeature = 0x080
	VoltageMinAlarm      Subfeature = 0x081
	VoltageMaxAlarm      Subfeature = 0x082
	VoltageBeep          Subfeature = 0x083
	VoltageLCritAlarm    Subfeature = 0x084
	VoltageCritAlarm     Subfeature = 0x085
)

// Fan sub-features.
const (
	FanInput    Subfeature = 0x100
	FanMin      Subfeature = 0x101
	FanMax      Subfeature = 0x102
	FanAlarm    Subfeature = 0x180
	FanFault    Subfeature = 0x181
	FanDiv      Subfeature = 0x182
	FanBeep     Subfeature = 0x183
	FanPulses   Subfeature = 0x184
	FanMinAlarm Subfeature = 0x185
	FanMaxAlarm Subfeature = 0x186
)

// Temperature sub-features.
const (
	TempInput          Subfeature = 0x200
	TempMax            Subfeature = 0x201
	TempMaxHyst        Subfeature = 0x202
	TempMin            Subfeature = 0x203
	TempCrit           Subfeature = 0x204
	TempCritHyst       Subfeature = 0x205
	TempLCrit          Subfeature = 0x206
	TempEmergency      Subfeature = 0x207
	TempEmergencyHyst  Subfeature = 0x208
	TempLowest         Subfeature = 0x209
	TempHighest        Subfeature = 0x20a
	TempMinHyst        Subfeature = 0x20b
	TempLCritHyst      Subfeature = 0x20c
	TempAlarm          Subfeature = 0x280
	TempMaxAlarm       Subfeature = 0x281
	TempMinAlarm       Subfeature = 0x282
	TempCritAlarm      Subfeature = 0x283
	TempFault          Subfeature = 0x284
	TempType           Subfeature = 0x285
	TempOffset         Subfeature = 0x286
	TempBeep           Subfeature = 0x287
	TempEmergencyAlarm Subfeature = 0x288
	TempLCritAlarm     Subfeature = 0x289
)

// Power sub-features.
const (
	PowerAverage         Subfeature = 0x300
	PowerAverageHighest  Subfeature = 0x301
	PowerAverageLowest   Subfeature = 0x302
	PowerInput           Subfeature = 0x303
	PowerInputHighest    Subfeature = 0x304
	PowerInputLowest     Subfeature = 0x305
	PowerCap             Subfeature = 0x306
	PowerCapHyst         Subfeature = 0x307
	PowerMax             Subfeature = 0x308
	PowerCrit            Subfeature = 0x309
	PowerMin             Subfeature = 0x30a
	PowerLCrit           Subfeature = 0x30b
	PowerAverageInterval Subfeature = 0x380
	PowerAlarm           Subfeature = 0x381
	PowerCapAlarm        Subfeature = 0x382
	PowerMaxAlarm        Subfeature = 0x383
	PowerCritAlarm       Subfeature = 0x384
	PowerMinAlarm        Subfeature = 0x385
	PowerLCritAlarm      Subfeature = 0x386
)

// Energy, current, humidity, VID, intrusion and beep-enable
// sub-features.
const (
	EnergyInput Subfeature = 0x400

	CurrentInput      Subfeature = 0x500
	CurrentMin        Subfeature = 0x501
	CurrentMax        Subfeature = 0x502
	CurrentLCrit      Subfeature = 0x503
	CurrentCrit       Subfeature = 0x504
	CurrentAverage    Subfeature = 0x505
	CurrentLowest     Subfeature = 0x506
	CurrentHighest    Subfeature = 0x507
	CurrentAlarm      Subfeature = 0x580
	CurrentMinAlarm   Subfeature = 0x581
	CurrentMaxAlarm   Subfeature = 0x582
	CurrentBeep       Subfeature = 0x583
	CurrentLCritAlarm Subfeature = 0x584
	CurrentCritAlarm  Subfeature = 0x585

	HumidityInput Subfeature = 0x600

	VoltageID Subfeature = 0x1000

	IntrusionAlarm Subfeature = 0x1100
	IntrusionBeep  Subfeature = 0x1101

	BeepEnable Subfeature = 0x1800

	// SubfeatureUnknown is the native library's explicit unknown marker.
	SubfeatureUnknown Subfeature = math.MaxInt32
)

// Feature returns the feature type this sub-feature belongs to,
// recovered from the upper bits of the code.
func (s Subfeature) Feature() Feature {
	if s == SubfeatureUnknown {
		return FeatureUnknown
	}
	return Feature(s >> 8)
}

// Known returns true if the code is one of the documented sub-feature
// types.
func (s Subfeature) Known() bool {
	_, ok := subfeatureNames[s]
	return ok
}

// IsBool returns true for sub-features whose value is boolean-like:
// alarms, beeps, faults, and the beep-enable switch. Their raw value
// is zero for false and nonzero for true.
func (s Subfeature) IsBool() bool {
	switch s {
	case VoltageAlarm, VoltageMinAlarm, VoltageMaxAlarm, VoltageBeep,
		VoltageLCritAlarm, VoltageCritAlarm,
		FanAlarm, FanFault, FanBeep, FanMinAlarm, FanMaxAlarm,
		TempAlarm, TempMaxAlarm, TempMinAlarm, TempCritAlarm,
		TempFault, TempBeep, TempEmergencyAlarm, TempLCritAlarm,
		PowerAlarm, PowerCapAlarm, PowerMaxAlarm, PowerCritAlarm,
		PowerMinAlarm, PowerLCritAlarm,
		CurrentAlarm, CurrentMinAlarm, CurrentMaxAlarm, CurrentBeep,
		CurrentLCritAlarm, CurrentCritAlarm,
		IntrusionAlarm, IntrusionBeep,
		BeepEnable:
		return true
	}
	return false
}

// Unit returns the measurement unit of the sub-feature's raw value.
// Boolean-like sub-features and unrecognized codes have no unit.
func (s Subfeature) Unit() Unit {
	if s.IsBool() {
		return UnitNone
	}
	switch s {
	case TempType, FanDiv, FanPulses:
		return UnitNone
	case PowerAverageInterval:
		return UnitSecond
	case VoltageID:
		return UnitVolt
	}
	switch s.Feature() {
	case FeatureVoltage:
		return UnitVolt
	case FeatureFan:
		return UnitRPM
	case FeatureTemperature:
		return UnitCelsius
	case FeaturePower:
		return UnitWatt
	case FeatureEnergy:
		return UnitJoule
	case FeatureCurrent:
		return UnitAmp
	case FeatureHumidity:
		return UnitPercent
	default:
		return UnitNone
	}
}

var subfeatureNames = map[Subfeature]string{
	VoltageInput:      "in_input",
	VoltageMin:        "in_min",
	VoltageMax:        "in_max",
	VoltageLCrit:      "in_lcrit",
	VoltageCrit:       "in_crit",
	VoltageAverage:    "in_average",
	VoltageLowest:     "in_lowest",
	VoltageHighest:    "in_highest",
	VoltageAlarm:      "in_alarm",
	VoltageMinAlarm:   "in_min_alarm",
	VoltageMaxAlarm:   "in_max_alarm",
	VoltageBeep:       "in_beep",
	VoltageLCritAlarm: "in_lcrit_alarm",
	VoltageCritAlarm:  "in_crit_alarm",

	FanInput:    "fan_input",
	FanMin:      "fan_min",
	FanMax:      "fan_max",
	FanAlarm:    "fan_alarm",
	FanFault:    "fan_fault",
	FanDiv:      "fan_div",
	FanBeep:     "fan_beep",
	FanPulses:   "fan_pulses",
	FanMinAlarm: "fan_min_alarm",
	FanMaxAlarm: "fan_max_alarm",

	TempInput:          "temp_input",
	TempMax:            "temp_max",
	TempMaxHyst:        "temp_max_hyst",
	TempMin:            "temp_min",
	TempCrit:           "temp_crit",
	TempCritHyst:       "temp_crit_hyst",
	TempLCrit:          "temp_lcrit",
	TempEmergency:      "temp_emergency",
	TempEmergencyHyst:  "temp_emergency_hyst",
	TempLowest:         "temp_lowest",
	TempHighest:        "temp_highest",
	TempMinHyst:        "temp_min_hyst",
	TempLCritHyst:      "temp_lcrit_hyst",
	TempAlarm:          "temp_alarm",
	TempMaxAlarm:       "temp_max_alarm",
	TempMinAlarm:       "temp_min_alarm",
	TempCritAlarm:      "temp_crit_alarm",
	TempFault:          "temp_fault",
	TempType:           "temp_type",
	TempOffset:         "temp_offset",
	TempBeep:           "temp_beep",
	TempEmergencyAlarm: "temp_emergency_alarm",
	TempLCritAlarm:     "temp_lcrit_alarm",

	PowerAverage:         "power_average",
	PowerAverageHighest:  "power_average_highest",
	PowerAverageLowest:   "power_average_lowest",
	PowerInput:           "power_input",
	PowerInputHighest:    "power_input_highest",
	PowerInputLowest:     "power_input_lowest",
	PowerCap:             "power_cap",
	PowerCapHyst:         "power_cap_hyst",
	PowerMax:             "power_max",
	PowerCrit:            "power_crit",
	PowerMin:             "power_min",
	PowerLCrit:           "power_lcrit",
	PowerAverageInterval: "power_average_interval",
	PowerAlarm:           "power_alarm",
	PowerCapAlarm:        "power_cap_alarm",
	PowerMaxAlarm:        "power_max_alarm",
	PowerCritAlarm:       "power_crit_alarm",
	PowerMinAlarm:        "power_min_alarm",
	PowerLCritAlarm:      "power_lcrit_alarm",

	EnergyInput: "energy_input",

	CurrentInput:      "curr_input",
	CurrentMin:        "curr_min",
	CurrentMax:        "curr_max",
	CurrentLCrit:      "curr_lcrit",
	CurrentCrit:       "curr_crit",
	CurrentAverage:    "curr_average",
	CurrentLowest:     "curr_lowest",
	CurrentHighest:    "curr_highest",
	CurrentAlarm:      "curr_alarm",
	CurrentMinAlarm:   "curr_min_alarm",
	CurrentMaxAlarm:   "curr_max_alarm",
	CurrentBeep:       "curr_beep",
	CurrentLCritAlarm: "curr_lcrit_alarm",
	CurrentCritAlarm:  "curr_crit_alarm",

	HumidityInput: "humidity_input",

	VoltageID: "vid",

	IntrusionAlarm: "intrusion_alarm",
	IntrusionBeep:  "intrusion_beep",

	BeepEnable: "beep_enable",

	SubfeatureUnknown: "unknown",
}

// String returns the sub-feature type name in sysfs-style notation.
func (s Subfeature) String() string {
	if name, ok := subfeatureNames[s]; ok {
		return name
	}
	return "subfeature(0x" + strconv.FormatUint(uint64(s), 16) + ")"
}
