//go:build darwin || linux || freebsd

package engine

import (
	"fmt"

	"github.com/ebitengine/purego"
)

type dlLinker struct{}

// SystemLinker links through dlopen/dlsym without cgo.
func SystemLinker() Linker { return dlLinker{} }

func (dlLinker) Open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func (dlLinker) Lookup(lib uintptr, symbol string) (uintptr, error) {
	sym, err := purego.Dlsym(lib, symbol)
	if err != nil {
		return 0, fmt.Errorf("engine: symbol %q: %w", symbol, err)
	}
	return sym, nil
}
