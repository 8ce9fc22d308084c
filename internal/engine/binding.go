package engine

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"match3/internal/diag"
)

// Binding is the process-wide link to one engine module. Bind runs the
// loader at most once; every later call returns the recorded outcome.
type Binding struct {
	module   string
	loader   *Loader
	reporter diag.Reporter
	now      func() time.Time

	once     sync.Once
	mu       sync.Mutex
	state    State
	handle   *Handle
	err      error
	attempts int
}

func NewBinding(module string, loader *Loader, reporter diag.Reporter) *Binding {
	if reporter == nil {
		reporter = diag.Discard
	}
	return &Binding{module: module, loader: loader, reporter: reporter, now: time.Now}
}

func (b *Binding) Module() string { return b.module }

// Bind links the engine on first call. A link failure is reported once as a
// diagnostic trace and returned; it leaves the binding Failed for good.
func (b *Binding) Bind() (*Handle, error) {
	b.once.Do(b.attempt)
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle, b.err
}

func (b *Binding) attempt() {
	h, err := b.load()

	b.mu.Lock()
	b.attempts++
	if err != nil {
		b.state = StateFailed
		b.err = err
	} else {
		b.state = StateBound
		b.handle = h
	}
	b.mu.Unlock()

	if err != nil {
		b.reporter.Report(b.trace(err))
	}
}

// load runs the loader, turning a panic inside it into a LinkFailure so the
// binding still ends Failed.
func (b *Binding) load() (h *Handle, err error) {
	defer func() {
		if r := recover(); r != nil {
			h = nil
			err = &LinkFailure{Module: b.module, Err: fmt.Errorf("%w: %v", ErrLinkerPanic, r)}
		}
	}()
	if b.loader == nil {
		return nil, &LinkFailure{Module: b.module, Err: ErrNoLoader}
	}
	return b.loader.Load(b.module)
}

func (b *Binding) trace(err error) diag.Trace {
	t := diag.Trace{
		Time:    b.now(),
		Kind:    diag.KindLinkFailure,
		Module:  b.module,
		Message: err.Error(),
		Stack:   string(debug.Stack()),
	}
	var lf *LinkFailure
	if errors.As(err, &lf) {
		t.Tried = lf.Tried
		if lf.Err != nil {
			t.Message = lf.Err.Error()
		}
	}
	return t
}

func (b *Binding) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Handle returns the linked module, or nil unless the state is Bound.
func (b *Binding) Handle() *Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle
}

func (b *Binding) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Attempts is how many times the loader ran: 0 before Bind, 1 after.
func (b *Binding) Attempts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attempts
}
