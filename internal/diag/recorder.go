package diag

import "sync"

// Recorder keeps every trace it receives, for the on-screen status and
// clipboard copy.
type Recorder struct {
	mu     sync.Mutex
	traces []Trace
}

func (r *Recorder) Report(t Trace) {
	r.mu.Lock()
	r.traces = append(r.traces, t)
	r.mu.Unlock()
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.traces)
}

// Last returns the most recent trace, if any.
func (r *Recorder) Last() (Trace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.traces) == 0 {
		return Trace{}, false
	}
	return r.traces[len(r.traces)-1], true
}

// All returns a copy of the recorded traces, oldest first.
func (r *Recorder) All() []Trace {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Trace, len(r.traces))
	copy(out, r.traces)
	return out
}
