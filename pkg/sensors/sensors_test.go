//go:build linux && cgo

package sensors

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingListener captures diagnostics for assertions.
type recordingListener struct {
	mu     sync.Mutex
	events []configEvent
	fatal  int
}

type configEvent struct {
	msg  string
	file string
	line int
}

func (l *recordingListener) OnConfigError(msg, file string, line int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, configEvent{msg: msg, file: file, line: line})
}

func (l *recordingListener) OnFatalError(msg, procedure string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fatal++
}

func (l *recordingListener) snapshot() []configEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]configEvent(nil), l.events...)
}

func (l *recordingListener) fatalCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fatal
}

// mustInit initializes with an empty configuration so tests do not
// depend on the host's /etc/sensors3.conf.
func mustInit(t *testing.T) *Sensors {
	t.Helper()
	h, err := New().WithConfigPath(os.DevNull).Init()
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestInitAndClose(t *testing.T) {
	h, err := New().WithConfigPath(os.DevNull).Init()
	require.NoError(t, err)
	require.NoError(t, h.Close())
	require.ErrorIs(t, h.Close(), ErrClosed)
}

func TestInitTwiceFails(t *testing.T) {
	h := mustInit(t)

	_, err := New().WithConfigPath(os.DevNull).Init()
	require.ErrorIs(t, err, ErrAlreadyInitialized)

	require.NoError(t, h.Close())

	// A closed handle no longer blocks re-initialization.
	h2, err := New().WithConfigPath(os.DevNull).Init()
	require.NoError(t, err)
	require.NoError(t, h2.Close())
}

func TestInitMissingConfig(t *testing.T) {
	_, err := New().WithConfigPath(filepath.Join(t.TempDir(), "absent.conf")).Init()
	require.Error(t, err)
	require.False(t, IsConfigParse(err))
}

func TestInitDirectoryConfig(t *testing.T) {
	_, err := New().WithConfigPath(t.TempDir()).Init()
	require.Error(t, err)
}

func TestInitConfigStream(t *testing.T) {
	f, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer f.Close()

	h, err := New().WithConfigFile(f).Init()
	require.NoError(t, err)
	require.NoError(t, h.Close())
}

func TestInitMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.conf")
	require.NoError(t, os.WriteFile(path, []byte("\nthis is not a sensors statement\n"), 0o600))

	l := &recordingListener{}
	_, err := New().WithConfigPath(path).WithListener(l).Init()
	require.Error(t, err)
	require.True(t, IsConfigParse(err), "got %v", err)

	// The parser stops at the first malformed statement, which sits
	// on line 2 of the file.
	events := l.snapshot()
	require.Len(t, events, 1)
	require.NotEmpty(t, events[0].msg)
	require.Equal(t, 2, events[0].line)
	require.Zero(t, l.fatalCount())
}

func TestListenerSilentOnCleanInit(t *testing.T) {
	l := &recordingListener{}
	h, err := New().WithConfigPath(os.DevNull).WithListener(l).Init()
	require.NoError(t, err)
	defer h.Close()

	require.Empty(t, l.snapshot())
	require.Zero(t, l.fatalCount())
}

func TestVersion(t *testing.T) {
	h := mustInit(t)
	require.NotEmpty(t, h.Version())
}

func TestChipEnumerationStable(t *testing.T) {
	h := mustInit(t)

	count := func() int {
		n := 0
		it := h.Chips(nil)
		for it.Next() {
			n++
		}
		require.NoError(t, it.Err())
		return n
	}

	first := count()
	require.Equal(t, first, count())
}

func TestChipViews(t *testing.T) {
	h := mustInit(t)

	it := h.Chips(nil)
	for it.Next() {
		chip := it.Chip()

		name, err := chip.Name()
		require.NoError(t, err)
		require.NotEmpty(t, name)
		require.NotEmpty(t, chip.Prefix())

		// A detected chip's display name parses back to an
		// equivalent owned chip.
		parsed, err := h.ParseChipName(name)
		require.NoError(t, err)
		back, err := parsed.Name()
		require.NoError(t, err)
		require.Equal(t, name, back)
		require.NoError(t, parsed.Close())
	}
	require.NoError(t, it.Err())
}

func TestFeaturesAndSubfeatures(t *testing.T) {
	h := mustInit(t)

	chips := h.Chips(nil)
	for chips.Next() {
		features := chips.Chip().Features()
		for features.Next() {
			f := features.Feature()

			name, err := f.Name()
			require.NoError(t, err)
			require.NotEmpty(t, name)

			label, err := f.Label()
			require.NoError(t, err)
			require.NotEmpty(t, label)

			var subNumbers []int32
			subs := f.Subfeatures()
			for subs.Next() {
				sf := subs.Subfeature()
				require.Equal(t, f.Number(), sf.Mapping())
				subNumbers = append(subNumbers, sf.Number())

				if !sf.Access().CanRead() {
					_, err := sf.Raw()
					require.ErrorIs(t, err, ErrNotReadable)
					continue
				}
				// Reading must address the sub-feature itself;
				// a non-input sub-feature such as temp1_max has a
				// number distinct from its feature's and still
				// reads cleanly.
				if _, err := sf.Raw(); err != nil {
					var ne *NativeError
					require.ErrorAs(t, err, &ne)
					continue
				}
				v, err := sf.Value()
				require.NoError(t, err)
				require.Equal(t, sf.Kind(), v.Kind())
			}
			require.NoError(t, subs.Err())

			// Sub-feature numbers are distinct from one another, and
			// at most one of them can coincide with the feature's own
			// number. Conflating the two address spaces would make
			// every non-first sub-feature read the wrong register.
			seen := make(map[int32]bool, len(subNumbers))
			differing := 0
			for _, nr := range subNumbers {
				require.False(t, seen[nr])
				seen[nr] = true
				if nr != f.Number() {
					differing++
				}
			}
			if len(subNumbers) > 1 {
				require.GreaterOrEqual(t, differing, len(subNumbers)-1)
			}
		}
		require.NoError(t, features.Err())
	}
	require.NoError(t, chips.Err())
}

func TestParseChipNameWildcard(t *testing.T) {
	h := mustInit(t)

	pattern, err := h.ParseChipName("*-isa-*")
	require.NoError(t, err)
	defer pattern.Close()

	require.Empty(t, pattern.Prefix())
	_, explicit := pattern.Address()
	require.False(t, explicit)

	it := h.Chips(pattern)
	for it.Next() {
		require.Equal(t, "isa", it.Chip().Bus().Kind().String())
	}
	require.NoError(t, it.Err())
}

func TestParseChipNameMalformed(t *testing.T) {
	h := mustInit(t)

	_, err := h.ParseChipName("not a chip name at all")
	var ne *NativeError
	require.ErrorAs(t, err, &ne)
	require.Equal(t, "sensors_parse_chip_name", ne.Op)

	_, err = h.ParseChipName("embedded\x00nul")
	require.ErrorIs(t, err, ErrNulByte)
}

func TestInitNulByteConfigPath(t *testing.T) {
	_, err := New().WithConfigPath("bad\x00path.conf").Init()
	require.ErrorIs(t, err, ErrNulByte)
}

func TestViewsAfterClose(t *testing.T) {
	h, err := New().WithConfigPath(os.DevNull).Init()
	require.NoError(t, err)

	it := h.Chips(nil)
	require.NoError(t, h.Close())

	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), ErrClosed)

	_, err = h.ParseChipName("k10temp-pci-00c3")
	require.ErrorIs(t, err, ErrClosed)
}

func TestStaleHandleAfterReinit(t *testing.T) {
	h1, err := New().WithConfigPath(os.DevNull).Init()
	require.NoError(t, err)
	require.NoError(t, h1.Close())

	h2, err := New().WithConfigPath(os.DevNull).Init()
	require.NoError(t, err)
	defer h2.Close()

	// The old handle must not pass for the new one.
	it := h1.Chips(nil)
	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), ErrClosed)
	require.ErrorIs(t, h1.Close(), ErrClosed)
}
