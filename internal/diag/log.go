package diag

import (
	"log"
	"strings"
)

// LogReporter writes traces to a std logger. A nil Logger means the
// package-level logger.
type LogReporter struct {
	Logger *log.Logger
}

func (r LogReporter) Report(t Trace) {
	lines := strings.Split(t.String(), "\n")
	for _, l := range lines {
		if r.Logger != nil {
			r.Logger.Printf("ENGINE: %s", l)
			continue
		}
		log.Printf("ENGINE: %s", l)
	}
}
