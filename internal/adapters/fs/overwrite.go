// Package fs implements the destructive filesystem primitives behind
// ports.FileOps: zero-fill overwriting and file/empty-directory removal.
package fs

import (
	"io"
	"os"

	"go.trai.ch/zerr"
)

// overwriteBufferSize is the fixed chunk written per syscall during an
// overwrite pass. The value is deliberately byte-based, not power-of-two.
const overwriteBufferSize = 1_000_000

// FileOps implements ports.FileOps on the local filesystem.
type FileOps struct{}

// New creates a new FileOps.
func New() *FileOps {
	return &FileOps{}
}

// Overwrite zero-fills the file at path runs times and flushes each pass to
// stable storage. The file is opened write-only and closed before returning;
// it is never removed here.
func (o *FileOps) Overwrite(path string, runs int) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.Wrap(err, "failed to stat overwrite target")
	}
	if info.IsDir() {
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return zerr.Wrap(err, "failed to open file for overwrite")
	}
	defer f.Close() //nolint:errcheck // Write errors are surfaced by OverwriteFile/Sync

	return OverwriteFile(f, runs)
}

// OverwriteFile zero-fills every byte of f's current length, runs times.
// Postcondition: the length is unchanged and every byte in the original range
// is 0x00. A directory handle or runs <= 0 is a no-op success. Partial passes
// are not rolled back; an earlier completed pass may already have zeroed the
// file when a later pass fails.
func OverwriteFile(f *os.File, runs int) error {
	info, err := f.Stat()
	if err != nil {
		return zerr.Wrap(err, "failed to stat overwrite target")
	}
	if info.IsDir() {
		return nil
	}

	size := info.Size()
	buf := make([]byte, overwriteBufferSize)

	for pass := 0; pass < runs; pass++ {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return zerr.Wrap(err, "failed to seek to start of file")
		}

		remaining := size
		for remaining >= overwriteBufferSize {
			if _, err := f.Write(buf); err != nil {
				return zerr.Wrap(err, "failed to write overwrite buffer")
			}
			remaining -= overwriteBufferSize
		}
		// Write exactly the remainder so the original end of file is never
		// crossed.
		if remaining > 0 {
			if _, err := f.Write(buf[:remaining]); err != nil {
				return zerr.Wrap(err, "failed to write final overwrite chunk")
			}
		}

		if err := f.Sync(); err != nil {
			return zerr.Wrap(err, "failed to flush overwrite pass")
		}
	}

	return nil
}
