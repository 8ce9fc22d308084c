//go:build !android && !ios

package screen

import "github.com/hajimehoshi/ebiten/v2"

const keyboardInput = true

func applyWindow(title string, width, height int) {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(width/2, height/2, -1, -1)
}
