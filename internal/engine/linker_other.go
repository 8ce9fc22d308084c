//go:build !(darwin || linux || freebsd || windows)

package engine

type noLinker struct{}

func SystemLinker() Linker { return noLinker{} }

func (noLinker) Open(string) (uintptr, error) { return 0, ErrUnsupported }

func (noLinker) Lookup(uintptr, string) (uintptr, error) { return 0, ErrUnsupported }
