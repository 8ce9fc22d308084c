// Package engine binds the native Match3 game engine into the shell process.
//
// Binding is a one-shot operation: a Binding moves from Unbound to either
// Bound or Failed exactly once and stays there for the life of the process.
// A failed bind is reported and absorbed; it never reaches the host.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ModuleName identifies the native engine library.
const ModuleName = "Match3"

type State int

const (
	StateUnbound State = iota
	StateBound
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateBound:
		return "bound"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool { return s == StateBound || s == StateFailed }

var (
	ErrEmptyModuleName = errors.New("engine: empty module name")
	ErrUnsupported     = errors.New("engine: native linking not supported on this platform")
	ErrLinkerPanic     = errors.New("engine: linker panicked")
	ErrNoLoader        = errors.New("engine: no loader")
)

// LinkFailure means the named module could not be resolved or linked:
// missing, wrong architecture, or an unsatisfied native dependency.
type LinkFailure struct {
	Module string
	Tried  []string
	Err    error
}

func (e *LinkFailure) Error() string {
	if len(e.Tried) == 0 {
		return fmt.Sprintf("engine: link %q: %v", e.Module, e.Err)
	}
	return fmt.Sprintf("engine: link %q (tried %s): %v", e.Module, strings.Join(e.Tried, ", "), e.Err)
}

func (e *LinkFailure) Unwrap() error { return e.Err }
