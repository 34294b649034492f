package kind

import (
	"math"
	"testing"
)

func TestSubfeatureFeature(t *testing.T) {
	cases := []struct {
		sub  Subfeature
		want Feature
	}{
		{VoltageInput, FeatureVoltage},
		{VoltageCritAlarm, FeatureVoltage},
		{FanInput, FeatureFan},
		{FanPulses, FeatureFan},
		{TempInput, FeatureTemperature},
		{TempLCritAlarm, FeatureTemperature},
		{PowerAverageInterval, FeaturePower},
		{EnergyInput, FeatureEnergy},
		{CurrentBeep, FeatureCurrent},
		{HumidityInput, FeatureHumidity},
		{VoltageID, FeatureVoltageID},
		{IntrusionBeep, FeatureIntrusion},
		{BeepEnable, FeatureBeepEnable},
		{SubfeatureUnknown, FeatureUnknown},
	}
	for _, c := range cases {
		t.Run(c.sub.String(), func(t *testing.T) {
			if got := c.sub.Feature(); got != c.want {
				t.Errorf("Feature() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSubfeatureUnits(t *testing.T) {
	cases := []struct {
		sub  Subfeature
		want Unit
	}{
		{VoltageInput, UnitVolt},
		{VoltageID, UnitVolt},
		{FanInput, UnitRPM},
		{FanDiv, UnitNone},
		{FanPulses, UnitNone},
		{TempInput, UnitCelsius},
		{TempOffset, UnitCelsius},
		{TempType, UnitNone},
		{PowerInput, UnitWatt},
		{PowerAverageInterval, UnitSecond},
		{EnergyInput, UnitJoule},
		{CurrentAverage, UnitAmp},
		{HumidityInput, UnitPercent},
		{TempAlarm, UnitNone},
		{BeepEnable, UnitNone},
		{SubfeatureUnknown, UnitNone},
	}
	for _, c := range cases {
		t.Run(c.sub.String(), func(t *testing.T) {
			if got := c.sub.Unit(); got != c.want {
				t.Errorf("Unit() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestSubfeatureBoolClassification(t *testing.T) {
	boolKinds := []Subfeature{
		VoltageAlarm, VoltageBeep, FanAlarm, FanFault, TempAlarm,
		TempFault, TempBeep, PowerCapAlarm, CurrentCritAlarm,
		IntrusionAlarm, IntrusionBeep, BeepEnable,
	}
	for _, s := range boolKinds {
		if !s.IsBool() {
			t.Errorf("%v: IsBool() = false, want true", s)
		}
	}

	scalarKinds := []Subfeature{
		VoltageInput, FanInput, FanDiv, TempInput, TempType,
		PowerAverageInterval, EnergyInput, CurrentHighest,
		HumidityInput, VoltageID,
	}
	for _, s := range scalarKinds {
		if s.IsBool() {
			t.Errorf("%v: IsBool() = true, want false", s)
		}
	}
}

func TestUnknownCodesPreserved(t *testing.T) {
	// A code from a future library version survives the newtype
	// round trip untouched.
	raw := Subfeature(0x723)
	if raw.Known() {
		t.Fatal("unexpected known code")
	}
	if uint32(raw) != 0x723 {
		t.Fatalf("raw code lost: %#x", uint32(raw))
	}
	if raw.Feature() != Feature(0x7) {
		t.Errorf("Feature() = %v, want raw feature 0x7", raw.Feature())
	}
	if raw.String() != "subfeature(0x723)" {
		t.Errorf("String() = %q", raw.String())
	}

	f := Feature(0x42)
	if f.Known() {
		t.Fatal("unexpected known feature")
	}
	if f.String() != "feature(66)" {
		t.Errorf("String() = %q", f.String())
	}

	b := Bus(99)
	if b.Known() {
		t.Fatal("unexpected known bus")
	}
	if b.String() != "bus(99)" {
		t.Errorf("String() = %q", b.String())
	}
}

func TestBusNames(t *testing.T) {
	cases := map[Bus]string{
		BusAny:     "any",
		BusI2C:     "i2c",
		BusISA:     "isa",
		BusPCI:     "pci",
		BusSPI:     "spi",
		BusVirtual: "virtual",
		BusACPI:    "acpi",
		BusHID:     "hid",
		BusMDIO:    "mdio",
		BusSCSI:    "scsi",
	}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Errorf("%d: String() = %q, want %q", b, got, want)
		}
	}
}

func TestAccessFlags(t *testing.T) {
	t.Run("ReadOnly", func(t *testing.T) {
		a := AccessRead
		if !a.CanRead() || a.CanWrite() {
			t.Errorf("unexpected flags for %v", a)
		}
		if a.String() != "R" {
			t.Errorf("String() = %q", a.String())
		}
	})

	t.Run("ReadWriteCompute", func(t *testing.T) {
		a := AccessRead | AccessWrite | AccessComputeMapping
		if !a.CanRead() || !a.CanWrite() || !a.ComputeMapping() {
			t.Errorf("unexpected flags for %v", a)
		}
		if a.String() != "RWC" {
			t.Errorf("String() = %q", a.String())
		}
	})

	t.Run("None", func(t *testing.T) {
		if Access(0).String() != "-" {
			t.Errorf("String() = %q", Access(0).String())
		}
	})
}

func TestTemperatureSensorFromRaw(t *testing.T) {
	cases := []struct {
		raw  float64
		want TemperatureSensor
		ok   bool
	}{
		{0, TemperatureSensorDisabled, true},
		{1, TemperatureSensorCPUDiode, true},
		{3.4, TemperatureSensorThermalDiode, true},
		{6, TemperatureSensorIntelPECI, true},
		{7, 0, false},
		{1000, 0, false},
		{1001, TemperatureSensorThermistor, true},
		{math.Inf(1), TemperatureSensorThermistor, true},
		{math.Inf(-1), 0, false},
		{math.NaN(), 0, false},
		{-1, 0, false},
		// Rounding happens before the range checks.
		{-0.4, TemperatureSensorDisabled, true},
		{-0.6, 0, false},
		{1000.3, 0, false},
		{1000.6, TemperatureSensorThermistor, true},
	}
	for _, c := range cases {
		got, ok := TemperatureSensorFromRaw(c.raw)
		if ok != c.ok {
			t.Errorf("FromRaw(%v): ok = %v, want %v", c.raw, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("FromRaw(%v) = %v, want %v", c.raw, got, c.want)
		}
	}
}
