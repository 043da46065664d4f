// Package telemetry provides the progress reporting adapters.
package telemetry

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleSink implements ports.ProgressSink by printing styled lines to a
// writer, one per event. Progress goes to stderr so command output on stdout
// stays machine-readable.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a ConsoleSink writing to w.
func NewConsole(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

// BatchStarted prints the batch header.
func (s *ConsoleSink) BatchStarted(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, headerStyle.Render(op))
}

// Entry prints the path the batch reached.
func (s *ConsoleSink) Entry(path string, isDir bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	style := entryStyle
	if isDir {
		style = dirStyle
	}
	fmt.Fprintf(s.w, "  %s %s\n", style.Render(iconDot), style.Render(path))
}

// Warn prints a per-input warning.
func (s *ConsoleSink) Warn(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "  %s %s\n", warnStyle.Render(iconWarning), warnStyle.Render(msg))
}

// BatchDone prints the batch summary.
func (s *ConsoleSink) BatchDone(processed int, completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if completed {
		fmt.Fprintf(s.w, "%s %d entries\n", doneStyle.Render(iconCheck), processed)
		return
	}
	fmt.Fprintf(s.w, "%s stopped after %d entries\n", abortStyle.Render(iconCross), processed)
}
