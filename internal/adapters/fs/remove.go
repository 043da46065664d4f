package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Remove deletes the file or empty directory at path. The traversal visits
// children before their parent, so by the time a directory reaches Remove it
// must already be empty; a non-empty directory is an error, not a recursive
// delete.
func (o *FileOps) Remove(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrNotFound
		}
		return zerr.Wrap(err, "failed to stat removal target")
	}

	if err := os.Remove(path); err != nil {
		return zerr.Wrap(err, "failed to remove entry")
	}
	return nil
}

// Exists reports whether path refers to an existing entry.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
