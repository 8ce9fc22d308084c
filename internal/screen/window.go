package screen

import (
	"fmt"

	"match3/internal/layout"
)

// Window is the Ebitengine-backed shell surface.
type Window struct {
	Title         string
	Width, Height int

	layout    layout.Layout
	presented bool
}

func NewWindow(title string, width, height int) *Window {
	return &Window{Title: title, Width: width, Height: height}
}

func (w *Window) Present(l layout.Layout) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	title := w.Title
	if title == "" {
		title = l.Title
	}
	width, height := w.Width, w.Height
	if width <= 0 || height <= 0 {
		width, height = l.Width, l.Height
	}
	applyWindow(title, width, height)

	w.layout = l
	w.presented = true
	return nil
}

func (w *Window) Presented() bool { return w.presented }

func (w *Window) Layout() layout.Layout { return w.layout }
