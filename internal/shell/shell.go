// Package shell is the application's lifecycle anchor. The host (desktop
// main or the mobile binding) calls Activate once per activation; the shell
// shows its surface first and only then binds the native engine, so a
// missing engine still leaves a valid window.
package shell

import (
	"log"

	"match3/internal/engine"
	"match3/internal/layout"
)

// Surface is whatever the host draws on. Present makes the layout visible.
type Surface interface {
	Present(layout.Layout) error
}

type Deps struct {
	Surface Surface
	Layout  layout.Layout
	Binding *engine.Binding
}

type Shell struct {
	layout     layout.Layout
	binding    *engine.Binding
	surfaceErr error
}

// Activate establishes the surface, then binds the engine. savedState is
// opaque to the shell and ignored. Activate never fails: a surface error is
// recorded and skips the bind, a link failure is absorbed by the binding.
func Activate(savedState []byte, deps Deps) *Shell {
	s := &Shell{layout: deps.Layout, binding: deps.Binding}
	if savedState != nil {
		log.Printf("SHELL: ignoring %d bytes of saved state", len(savedState))
	}

	if err := deps.Surface.Present(deps.Layout); err != nil {
		log.Printf("SHELL: present %s: %v", deps.Layout.Name, err)
		s.surfaceErr = err
		return s
	}

	if _, err := s.binding.Bind(); err != nil {
		log.Printf("SHELL: running without engine")
		return s
	}
	log.Printf("SHELL: engine %s bound", s.binding.Module())
	return s
}

func (s *Shell) Layout() layout.Layout { return s.layout }

func (s *Shell) State() engine.State { return s.binding.State() }

// Engine returns the bound engine, if any.
func (s *Shell) Engine() (*engine.Handle, bool) {
	h := s.binding.Handle()
	return h, h != nil
}

// Failure is the link failure, if the bind failed.
func (s *Shell) Failure() error { return s.binding.Err() }

func (s *Shell) SurfaceErr() error { return s.surfaceErr }
