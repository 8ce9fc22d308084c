// Package screen draws the shell with Ebitengine: the presented layout and
// the engine binding status.
package screen

import (
	"image/color"
	"log"
	"time"

	"match3/internal/diag"
	"match3/internal/engine"
	"match3/internal/layout"
	"match3/internal/shell"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	statusElement = "engine_status"
	hintElement   = "hint"
	flashFor      = 2 * time.Second
)

var defaultText = color.NRGBA{255, 255, 255, 255}

// StatusText describes the binding for the engine_status label.
func StatusText(st engine.State, surfaceOK bool) string {
	if !surfaceOK {
		return "surface only"
	}
	switch st {
	case engine.StateBound:
		return "engine: bound"
	case engine.StateFailed:
		return "engine unavailable"
	}
	return "engine: starting"
}

// hintVisible reports whether the copy-diagnostic hint applies: only after
// a failed bind, and only where a keyboard can press C.
func hintVisible(st engine.State, keyboard bool) bool {
	return keyboard && st == engine.StateFailed
}

type Game struct {
	win   *Window
	shell *shell.Shell
	diags *diag.Recorder

	bg     color.NRGBA
	colors map[string]color.NRGBA

	flash      string
	flashUntil time.Time
}

func NewGame(win *Window, sh *shell.Shell, diags *diag.Recorder) *Game {
	l := win.Layout()
	if !win.Presented() {
		l = sh.Layout()
	}
	g := &Game{win: win, shell: sh, diags: diags, colors: map[string]color.NRGBA{}}
	g.bg, _ = layout.ParseColor(l.Background)
	for _, e := range l.Elements {
		c := defaultText
		if e.Color != "" {
			if pc, err := layout.ParseColor(e.Color); err == nil {
				c = pc
			}
		}
		g.colors[e.ID] = c
	}
	return g
}

func (g *Game) Update() error {
	if keyboardInput && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyDiagnostic()
	}
	return nil
}

func (g *Game) copyDiagnostic() {
	if g.diags == nil {
		return
	}
	t, ok := g.diags.Last()
	if !ok {
		g.setFlash("no diagnostics")
		return
	}
	if err := clipboard.WriteAll(t.Text()); err != nil {
		log.Println("clipboard copy failed:", err)
		g.setFlash("copy failed")
		return
	}
	g.setFlash("diagnostic copied to clipboard")
}

func (g *Game) setFlash(s string) {
	g.flash = s
	g.flashUntil = time.Now().Add(flashFor)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	l := g.currentLayout()
	st := g.shell.State()
	for _, e := range l.Elements {
		s := e.Text
		switch e.ID {
		case statusElement:
			s = StatusText(st, g.shell.SurfaceErr() == nil)
		case hintElement:
			if !hintVisible(st, keyboardInput) {
				continue
			}
		}
		if s == "" {
			continue
		}
		text.Draw(screen, s, basicfont.Face7x13, e.X, e.Y, g.colors[e.ID])
	}

	if g.flash != "" && time.Now().Before(g.flashUntil) {
		text.Draw(screen, g.flash, basicfont.Face7x13, 24, l.Height-24, defaultText)
	}
}

func (g *Game) currentLayout() layout.Layout {
	if g.win.Presented() {
		return g.win.Layout()
	}
	return g.shell.Layout()
}

func (g *Game) Layout(_, _ int) (int, int) {
	l := g.currentLayout()
	return l.Width, l.Height
}
