package screen

import (
	"testing"

	"match3/internal/engine"
	"match3/internal/layout"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	assert.Equal(t, "engine: bound", StatusText(engine.StateBound, true))
	assert.Equal(t, "engine unavailable", StatusText(engine.StateFailed, true))
	assert.Equal(t, "engine: starting", StatusText(engine.StateUnbound, true))
	assert.Equal(t, "surface only", StatusText(engine.StateUnbound, false))
}

func TestWindowRejectsInvalidLayout(t *testing.T) {
	w := NewWindow("x", 100, 100)
	assert.Error(t, w.Present(layout.Layout{Name: "broken"}))
	assert.False(t, w.Presented())
}

func TestHintVisible(t *testing.T) {
	assert.True(t, hintVisible(engine.StateFailed, true))
	assert.False(t, hintVisible(engine.StateFailed, false))
	assert.False(t, hintVisible(engine.StateBound, true))
	assert.False(t, hintVisible(engine.StateUnbound, true))
}
