package engine

import (
	"errors"
	"fmt"
	"runtime"
)

// Loader resolves a module name to library candidates and links the first
// one that opens. It keeps no state between calls; one-shot semantics live
// in Binding.
type Loader struct {
	Linker Linker
	Dirs   []string
	GOOS   string
}

func NewLoader(dirs []string) *Loader {
	return &Loader{Linker: SystemLinker(), Dirs: dirs, GOOS: runtime.GOOS}
}

// Load links module into the process. Any error it returns is a
// *LinkFailure.
func (l *Loader) Load(module string) (*Handle, error) {
	if module == "" {
		return nil, &LinkFailure{Err: ErrEmptyModuleName}
	}
	linker := l.Linker
	if linker == nil {
		linker = SystemLinker()
	}
	goos := l.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	tried := Candidates(module, goos, l.Dirs)

	var errs []error
	for _, path := range tried {
		lib, err := linker.Open(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		return &Handle{Module: module, Path: path, lib: lib, linker: linker}, nil
	}
	return nil, &LinkFailure{Module: module, Tried: tried, Err: errors.Join(errs...)}
}
