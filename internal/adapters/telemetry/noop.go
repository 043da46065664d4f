package telemetry

// NoopSink is a ProgressSink that discards every event.
type NoopSink struct{}

// NewNoop creates a new NoopSink.
func NewNoop() *NoopSink {
	return &NoopSink{}
}

// BatchStarted does nothing.
func (s *NoopSink) BatchStarted(_ string) {}

// Entry does nothing.
func (s *NoopSink) Entry(_ string, _ bool) {}

// Warn does nothing.
func (s *NoopSink) Warn(_ string) {}

// BatchDone does nothing.
func (s *NoopSink) BatchDone(_ int, _ bool) {}
