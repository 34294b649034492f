// Package value pairs a raw sensor reading with the sub-feature kind
// that gives it meaning.
//
// The native library reports every quantity as a bare float64: a
// temperature in degrees Celsius, a fan speed in RPM, an alarm flag
// as zero or nonzero. A Value keeps that raw magnitude together with
// its kind.Subfeature tag, so callers can render it with the right
// unit, interpret boolean-like kinds, and round-trip the raw number
// unchanged.
package value
