//go:build android || ios

package screen

// No keyboard, and the clipboard package has no mobile backend.
const keyboardInput = false

// The activity owns the surface on mobile; size and title come from the
// host.
func applyWindow(string, int, int) {}
