package diag

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileReporter appends one JSON object per trace to Path. Failures to write
// are logged and otherwise ignored; a broken diagnostics file must never take
// the shell down with it.
type FileReporter struct {
	Path string

	mu sync.Mutex
}

func NewFileReporter(path string) *FileReporter {
	return &FileReporter{Path: path}
}

func (r *FileReporter) Report(t Trace) {
	b, err := json.Marshal(t)
	if err != nil {
		log.Printf("DIAG: encode trace: %v", err)
		return
	}
	b = append(b, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		log.Printf("DIAG: mkdir %s: %v", filepath.Dir(r.Path), err)
		return
	}
	f, err := os.OpenFile(r.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("DIAG: open %s: %v", r.Path, err)
		return
	}
	defer f.Close()
	if _, err := f.Write(b); err != nil {
		log.Printf("DIAG: write %s: %v", r.Path, err)
	}
}
