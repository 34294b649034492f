// Package kind defines typed identifiers for the entities libsensors
// exposes: bus types, feature types, sub-feature types, access flags,
// temperature sensor types, and measurement units.
//
// # Raw codes
//
// Every type in this package is a newtype over the integer code the
// native library uses on the wire. The constants cover all codes
// documented for libsensors 3.x; codes introduced by newer library
// versions pass through the newtype unchanged, so callers never lose
// information when the library grows a type this package does not
// know about. Known() reports whether a code is one of the documented
// constants.
//
// # Hierarchy
//
// Sub-feature codes encode their owning feature type in the upper
// bits. Subfeature.Feature() recovers it, so a sub-feature kind alone
// is enough to classify the quantity it measures:
//
//	Feature (temp)
//	├── Subfeature temp_input   (Celsius, readable)
//	├── Subfeature temp_max     (Celsius, read/write)
//	└── Subfeature temp_alarm   (boolean)
//
// This package has no cgo dependency and builds on every platform.
package kind
