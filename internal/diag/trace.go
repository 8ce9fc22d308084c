// Package diag carries developer-facing diagnostics out of the shell.
//
// A Trace is produced when something the shell depends on (today only the
// native engine) fails in a way the player never sees. Reporters decide where
// the trace goes: the process log, memory, a file in the profile dir, or a
// developer console over websocket.
package diag

import (
	"fmt"
	"strings"
	"time"
)

const KindLinkFailure = "link_failure"

type Trace struct {
	Time    time.Time `json:"time"`
	Kind    string    `json:"kind"`
	Module  string    `json:"module"`
	Message string    `json:"message"`
	Tried   []string  `json:"tried,omitempty"`
	Stack   string    `json:"stack,omitempty"`
}

// Reporter receives traces. Implementations must not panic and must not
// block the caller for long; activation runs on the host's UI callback.
type Reporter interface {
	Report(Trace)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(Trace)

func (f ReporterFunc) Report(t Trace) { f(t) }

// String renders the trace the way it is written to the log.
func (t Trace) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s module=%q: %s", t.Kind, t.Module, t.Message)
	for _, p := range t.Tried {
		fmt.Fprintf(&b, "\n  tried %s", p)
	}
	if t.Stack != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(t.Stack, "\n"))
	}
	return b.String()
}

// Text is the clipboard form, prefixed with the UTC timestamp.
func (t Trace) Text() string {
	return t.Time.UTC().Format(time.RFC3339) + " " + t.String()
}

type multi []Reporter

func (m multi) Report(t Trace) {
	for _, r := range m {
		r.Report(t)
	}
}

// Multi fans a trace out to every non-nil reporter, in order.
func Multi(rs ...Reporter) Reporter {
	out := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Discard drops every trace.
var Discard Reporter = ReporterFunc(func(Trace) {})
