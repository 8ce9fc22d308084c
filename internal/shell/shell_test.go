package shell

import (
	"errors"
	"testing"

	"match3/internal/diag"
	"match3/internal/engine"
	"match3/internal/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event string

// recorder captures the order of surface and linker calls.
type recorder struct {
	events []event
}

type fakeSurface struct {
	rec *recorder
	err error
	got []layout.Layout
}

func (f *fakeSurface) Present(l layout.Layout) error {
	f.rec.events = append(f.rec.events, "present")
	f.got = append(f.got, l)
	return f.err
}

type fakeLinker struct {
	rec     *recorder
	present bool
}

func (f *fakeLinker) Open(path string) (uintptr, error) {
	f.rec.events = append(f.rec.events, event("open "+path))
	if f.present {
		return 42, nil
	}
	return 0, errors.New("dlopen failed: library not found")
}

func (f *fakeLinker) Lookup(uintptr, string) (uintptr, error) { return 0, errors.New("no symbols") }

type fixture struct {
	rec     *recorder
	surface *fakeSurface
	linker  *fakeLinker
	traces  *diag.Recorder
	deps    Deps
}

func newFixture(t *testing.T, enginePresent bool) *fixture {
	t.Helper()
	l, err := layout.Main()
	require.NoError(t, err)

	rec := &recorder{}
	f := &fixture{
		rec:     rec,
		surface: &fakeSurface{rec: rec},
		linker:  &fakeLinker{rec: rec, present: enginePresent},
		traces:  &diag.Recorder{},
	}
	loader := &engine.Loader{Linker: f.linker, GOOS: "android"}
	f.deps = Deps{
		Surface: f.surface,
		Layout:  l,
		Binding: engine.NewBinding(engine.ModuleName, loader, f.traces),
	}
	return f
}

func (f *fixture) opens() int {
	n := 0
	for _, e := range f.rec.events {
		if e != "present" {
			n++
		}
	}
	return n
}

func TestEngineBound(t *testing.T) {
	f := newFixture(t, true)
	s := Activate(nil, f.deps)

	assert.Equal(t, []event{"present", "open libMatch3.so"}, f.rec.events)
	assert.Equal(t, engine.StateBound, s.State())
	h, ok := s.Engine()
	require.True(t, ok)
	assert.Equal(t, "libMatch3.so", h.Path)
	assert.NoError(t, s.Failure())
	assert.Zero(t, f.traces.Len())
	assert.Equal(t, layout.MainName, f.surface.got[0].Name)
}

func TestEngineMissing(t *testing.T) {
	f := newFixture(t, false)

	var s *Shell
	require.NotPanics(t, func() { s = Activate(nil, f.deps) })

	assert.Equal(t, "present", string(f.rec.events[0]))
	assert.Len(t, f.surface.got, 1)
	assert.Equal(t, engine.StateFailed, s.State())
	_, ok := s.Engine()
	assert.False(t, ok)

	var lf *engine.LinkFailure
	assert.ErrorAs(t, s.Failure(), &lf)
	assert.Equal(t, 1, f.traces.Len())
	assert.NoError(t, s.SurfaceErr())
}

func TestSavedStateIgnored(t *testing.T) {
	for _, present := range []bool{true, false} {
		withNil := newFixture(t, present)
		withBlob := newFixture(t, present)

		a := Activate(nil, withNil.deps)
		b := Activate([]byte{0xde, 0xad, 0xbe, 0xef}, withBlob.deps)

		assert.Equal(t, withNil.rec.events, withBlob.rec.events)
		assert.Equal(t, a.State(), b.State())
		assert.Equal(t, withNil.traces.Len(), withBlob.traces.Len())
	}
}

func TestBindAttemptedExactlyOnce(t *testing.T) {
	for _, present := range []bool{true, false} {
		f := newFixture(t, present)
		s := Activate(nil, f.deps)

		assert.Equal(t, 1, f.opens())
		assert.True(t, s.State().Terminal())

		// a stray second bind from the same activation must not reach the linker
		_, _ = f.deps.Binding.Bind()
		assert.Equal(t, 1, f.opens())
		assert.Equal(t, 1, f.deps.Binding.Attempts())
	}
}

func TestSurfaceFailureSkipsBind(t *testing.T) {
	f := newFixture(t, true)
	f.surface.err = errors.New("no display")

	s := Activate(nil, f.deps)
	assert.EqualError(t, s.SurfaceErr(), "no display")
	assert.Equal(t, []event{"present"}, f.rec.events)
	assert.Equal(t, engine.StateUnbound, s.State())
	assert.Zero(t, f.deps.Binding.Attempts())
}

type explodingLinker struct{}

func (explodingLinker) Open(string) (uintptr, error) { panic("segfault in loader") }

func (explodingLinker) Lookup(uintptr, string) (uintptr, error) { return 0, nil }

func TestLinkerPanicStaysFailSoft(t *testing.T) {
	f := newFixture(t, true)
	f.deps.Binding = engine.NewBinding(engine.ModuleName, &engine.Loader{Linker: explodingLinker{}, GOOS: "android"}, f.traces)

	var s *Shell
	require.NotPanics(t, func() { s = Activate(nil, f.deps) })
	assert.Equal(t, engine.StateFailed, s.State())
	assert.ErrorIs(t, s.Failure(), engine.ErrLinkerPanic)
	_, ok := s.Engine()
	assert.False(t, ok)
	assert.Equal(t, 1, f.traces.Len())

	h, err := f.deps.Binding.Bind()
	assert.Nil(t, h)
	assert.Error(t, err)
}
