//go:build windows

package engine

import (
	"fmt"
	"syscall"
)

type dllLinker struct{}

func SystemLinker() Linker { return dllLinker{} }

func (dllLinker) Open(path string) (uintptr, error) {
	lib, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(lib), nil
}

func (dllLinker) Lookup(lib uintptr, symbol string) (uintptr, error) {
	sym, err := syscall.GetProcAddress(syscall.Handle(lib), symbol)
	if err != nil {
		return 0, fmt.Errorf("engine: symbol %q: %w", symbol, err)
	}
	if sym == 0 {
		return 0, fmt.Errorf("engine: symbol %q not found", symbol)
	}
	return sym, nil
}
