// Package app wires configuration, diagnostics, the engine binding and the
// screen together and activates the shell. Desktop and mobile entry points
// both go through Start.
package app

import (
	"fmt"
	"io"
	"log"

	"match3/internal/config"
	"match3/internal/diag"
	"match3/internal/engine"
	"match3/internal/layout"
	"match3/internal/screen"
	"match3/internal/shell"

	"github.com/hajimehoshi/ebiten/v2"
)

const diagFileName = "diagnostics.log"

type App struct {
	Platform string
	Shell    *shell.Shell
	Diags    *diag.Recorder

	game    *screen.Game
	closers []io.Closer
}

// Start activates the shell. It only fails if the embedded layout is
// broken; a missing engine is reported, never returned.
func Start(platform string, cfg config.Config, savedState []byte) (*App, error) {
	l, err := layout.Main()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a := &App{Platform: platform, Diags: &diag.Recorder{}}
	reporters := []diag.Reporter{diag.LogReporter{}, a.Diags}
	if cfg.DiagFile {
		reporters = append(reporters, diag.NewFileReporter(config.ConfigPath(cfg.Profile, diagFileName)))
	}
	if cfg.DiagURL != "" {
		ws := diag.NewWSReporter(cfg.DiagURL)
		reporters = append(reporters, ws)
		a.closers = append(a.closers, ws)
	}

	loader := engine.NewLoader(cfg.EngineDirs)
	binding := engine.NewBinding(engine.ModuleName, loader, diag.Multi(reporters...))
	win := screen.NewWindow(cfg.Title, cfg.Width, cfg.Height)

	log.Printf("SHELL: activating on %s", platform)
	a.Shell = shell.Activate(savedState, shell.Deps{
		Surface: win,
		Layout:  l,
		Binding: binding,
	})
	a.game = screen.NewGame(win, a.Shell, a.Diags)
	return a, nil
}

func (a *App) Game() ebiten.Game { return a.game }

// Close stops background diagnostic sinks. The engine stays linked until
// the process exits.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
