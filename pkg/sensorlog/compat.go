//go:build linux && cgo

package sensorlog

import "github.com/lmsensors-go/lmsensors/pkg/sensors"

// The local Listener interface must stay assignable to the sensors
// package's listener on platforms where that package builds.
var (
	_ sensors.Listener = (*SlogListener)(nil)
	_ sensors.Listener = (*Recorder)(nil)
	_ sensors.Listener = Listener(nil)
)
