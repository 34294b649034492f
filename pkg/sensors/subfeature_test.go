//go:build linux && cgo

package sensors

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/lmsensors-go/lmsensors/pkg/kind"
	"github.com/lmsensors-go/lmsensors/pkg/value"
)

// Access gating happens before any native call, so it is testable
// without an initialized library.

func TestRawRejectedWithoutReadAccess(t *testing.T) {
	sf := Subfeature{
		kindv:  kind.TempMax,
		access: kind.AccessWrite,
	}

	_, err := sf.Raw()
	require.ErrorIs(t, err, ErrNotReadable)

	_, err = sf.Value()
	require.ErrorIs(t, err, ErrNotReadable)
}

func TestSetRawRejectedWithoutWriteAccess(t *testing.T) {
	sf := Subfeature{
		kindv:  kind.TempInput,
		access: kind.AccessRead,
	}

	require.ErrorIs(t, sf.SetRaw(42), ErrNotWritable)
	require.ErrorIs(t, sf.Set(value.New(kind.TempInput, 42)), ErrNotWritable)
}

func TestSetRejectsMismatchedKind(t *testing.T) {
	sf := Subfeature{
		kindv:  kind.TempMax,
		access: kind.AccessRead | kind.AccessWrite,
	}

	err := sf.Set(value.New(kind.FanInput, 1200))
	require.ErrorIs(t, err, ErrKindMismatch)
}

// Reads and writes must be addressed by the sub-feature's own number.
// The mapping field names the owning feature, whose number is usually
// different, and mixing the two up reads the wrong register.
func TestValueCallsAddressSubfeatureNumber(t *testing.T) {
	savedGet, savedSet := nativeGetValue, nativeSetValue
	defer func() { nativeGetValue, nativeSetValue = savedGet, savedSet }()

	var gotNr int32 = -1
	nativeGetValue = func(chip unsafe.Pointer, nr int32) (float64, int32) {
		gotNr = nr
		return 42, 0
	}
	var setNr int32 = -1
	nativeSetValue = func(chip unsafe.Pointer, nr int32, v float64) int32 {
		setNr = nr
		return 0
	}

	// With no live handle the zero view's aliveness check passes, so
	// the stubbed native calls are reachable without hardware.
	sf := Subfeature{
		number:  7,
		mapping: 3,
		kindv:   kind.TempMax,
		access:  kind.AccessRead | kind.AccessWrite,
	}
	require.NotEqual(t, sf.Mapping(), sf.Number())

	raw, err := sf.Raw()
	require.NoError(t, err)
	require.Equal(t, 42.0, raw)
	require.Equal(t, sf.Number(), gotNr)

	require.NoError(t, sf.SetRaw(85))
	require.Equal(t, sf.Number(), setNr)
}

func TestSubfeatureAccessors(t *testing.T) {
	sf := Subfeature{
		name:    "temp1_max",
		hasName: true,
		number:  7,
		mapping: 3,
		kindv:   kind.TempMax,
		access:  kind.AccessRead | kind.AccessWrite,
	}

	name, err := sf.Name()
	require.NoError(t, err)
	require.Equal(t, "temp1_max", name)
	require.Equal(t, int32(7), sf.Number())
	require.Equal(t, int32(3), sf.Mapping())
	require.Equal(t, kind.TempMax, sf.Kind())
	require.True(t, sf.Access().CanRead())
	require.True(t, sf.Access().CanWrite())
	require.Equal(t, "temp1_max", sf.String())

	anon := Subfeature{kindv: kind.TempInput}
	_, err = anon.Name()
	require.ErrorIs(t, err, ErrNoName)
	require.Equal(t, "temp_input", anon.String())
}
