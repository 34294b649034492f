package kind

import "strconv"

// Bus identifies the hardware bus type a chip is attached to.
// The values are the SENSORS_BUS_TYPE_* codes.
type Bus int16

const (
	// BusAny matches any bus type in a chip name pattern.
	BusAny Bus = -1

	// BusI2C is an I2C/SMBus adapter.
	BusI2C Bus = 0

	// BusISA is the legacy ISA bus.
	BusISA Bus = 1

	// BusPCI is the PCI bus.
	BusPCI Bus = 2

	// BusSPI is the SPI bus.
	BusSPI Bus = 3

	// BusVirtual is a virtual device with no physical bus.
	BusVirtual Bus = 4

	// BusACPI is an ACPI interface.
	BusACPI Bus = 5

	// BusHID is a HID device.
	BusHID Bus = 6

	// BusMDIO is the MDIO bus.
	BusMDIO Bus = 7

	// BusSCSI is the SCSI bus.
	BusSCSI Bus = 8
)

// Bus number sentinels used in chip name patterns.
const (
	// BusNumberAny matches any bus number.
	BusNumberAny int16 = -1

	// BusNumberIgnore marks the bus number as irrelevant.
	BusNumberIgnore int16 = -2
)

// Known returns true if the code is one of the documented bus types.
func (b Bus) Known() bool {
	return b >= BusAny && b <= BusSCSI
}

// String returns the bus type name as used in chip display names.
func (b Bus) String() string {
	switch b {
	case BusAny:
		return "any"
	case BusI2C:
		return "i2c"
	case BusISA:
		return "isa"
	case BusPCI:
		return "pci"
	case BusSPI:
		return "spi"
	case BusVirtual:
		return "virtual"
	case BusACPI:
		return "acpi"
	case BusHID:
		return "hid"
	case BusMDIO:
		return "mdio"
	case BusSCSI:
		return "scsi"
	default:
		return "bus(" + strconv.Itoa(int(b)) + ")"
	}
}
