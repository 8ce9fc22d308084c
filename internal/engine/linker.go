package engine

// Linker opens native libraries and resolves their symbols. The OS-specific
// implementation is returned by SystemLinker.
type Linker interface {
	Open(path string) (uintptr, error)
	Lookup(lib uintptr, symbol string) (uintptr, error)
}

// Handle is a successfully linked engine module.
type Handle struct {
	Module string
	Path   string

	lib    uintptr
	linker Linker
}

// Symbol resolves an exported entry point of the engine.
func (h *Handle) Symbol(name string) (uintptr, error) {
	return h.linker.Lookup(h.lib, name)
}
