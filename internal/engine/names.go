package engine

import "path/filepath"

// LibraryFileName maps a module name to the file the OS loader expects.
func LibraryFileName(module, goos string) string {
	switch goos {
	case "windows":
		return module + ".dll"
	case "darwin", "ios":
		return "lib" + module + ".dylib"
	default:
		return "lib" + module + ".so"
	}
}

// Candidates lists the paths to try, in order: the library file in each
// search dir, then the bare file name so the system loader path is searched
// last. On Android that is where the APK's native libs are extracted.
func Candidates(module, goos string, dirs []string) []string {
	file := LibraryFileName(module, goos)
	out := make([]string, 0, len(dirs)+1)
	seen := map[string]bool{}
	for _, d := range dirs {
		if d == "" {
			continue
		}
		p := filepath.Join(d, file)
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return append(out, file)
}
