package telemetry

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

// RecorderSink implements ports.ProgressSink on top of a progrock recorder.
// Each batch becomes one vertex; entries and warnings stream to its stdout.
type RecorderSink struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu     sync.Mutex
	vertex *progrock.VertexRecorder
}

// NewRecorder creates a RecorderSink emitting updates to w.
func NewRecorder(w progrock.Writer) *RecorderSink {
	return &RecorderSink{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// BatchStarted opens a vertex for the batch.
func (s *RecorderSink) BatchStarted(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vertex = s.rec.Vertex(digest.FromString(op), op)
}

// Entry streams the reached path to the batch vertex.
func (s *RecorderSink) Entry(path string, isDir bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vertex == nil {
		return
	}
	marker := "f"
	if isDir {
		marker = "d"
	}
	fmt.Fprintf(s.vertex.Stdout(), "%s %s\n", marker, path)
}

// Warn streams a warning line to the batch vertex.
func (s *RecorderSink) Warn(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vertex == nil {
		return
	}
	fmt.Fprintf(s.vertex.Stderr(), "warning: %s\n", msg)
}

// BatchDone closes the batch vertex.
func (s *RecorderSink) BatchDone(processed int, completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vertex == nil {
		return
	}
	fmt.Fprintf(s.vertex.Stdout(), "%d entries\n", processed)
	if completed {
		s.vertex.Done(nil)
	} else {
		s.vertex.Done(zerr.New("batch stopped early"))
	}
	s.vertex = nil
}

// Close flushes the underlying recorder.
func (s *RecorderSink) Close() error {
	if c, ok := s.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
