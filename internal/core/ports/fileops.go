package ports

// FileOps performs the destructive filesystem primitives used by the
// traversal operations. Errors are returned without path context; the engine
// attaches the offending path at the point of failure.
//
//go:generate go run go.uber.org/mock/mockgen -source=fileops.go -destination=mocks/mock_fileops.go -package=mocks
type FileOps interface {
	// Overwrite zero-fills the regular file at path runs times. A directory
	// is a no-op success, runs <= 0 performs no writes, and the file is never
	// truncated, extended or removed.
	Overwrite(path string, runs int) error

	// Remove deletes the file or empty directory at path.
	Remove(path string) error
}
