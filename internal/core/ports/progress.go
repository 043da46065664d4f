package ports

// ProgressSink receives progress events from the engines. It replaces the
// shared spinner state the engines would otherwise have to mutate from deep
// inside the recursion: reporting is decoupled from control flow and no event
// feeds a return value back into the walk.
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressSink interface {
	// BatchStarted signals the start of an operation batch, e.g. "shred".
	BatchStarted(op string)

	// Entry signals that the batch reached the given path.
	Entry(path string, isDir bool)

	// Warn reports a per-input condition that does not abort the batch, such
	// as a non-existent path being skipped.
	Warn(msg string)

	// BatchDone signals the end of the batch with the number of entries
	// processed. completed is false when the batch stopped early.
	BatchDone(processed int, completed bool)
}
