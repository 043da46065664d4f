// Package trash implements the trash-bin service on the local filesystem.
// Trashed payloads live under <root>/files/<id>; metadata is kept in a flat
// JSON index next to them.
package trash

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	indexFilename = "index.json"
	payloadDir    = "files"

	// listStatLimit bounds the payload stat fan-out during List. Listing is
	// read-only; the destructive paths stay strictly sequential.
	listStatLimit = 8
)

// entry is the persisted form of one trashed item.
type entry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	From        string    `json:"from"`
	DeletedAt   time.Time `json:"deleted_at"`
	IsDir       bool      `json:"is_dir"`
	Fingerprint uint64    `json:"fingerprint,omitempty"`
}

// Bin implements ports.TrashBin backed by a directory and a JSON index.
type Bin struct {
	root string
	log  ports.Logger

	mu    sync.RWMutex
	items map[string]entry
}

// DefaultRoot returns the trash location used when no override is configured.
func DefaultRoot() (string, error) {
	if env := os.Getenv("BINIT_TRASH_DIR"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, ".local", "share", "binit"), nil
}

// NewBin opens (creating if necessary) the trash bin rooted at root.
func NewBin(root string, log ports.Logger) (*Bin, error) {
	b := &Bin{
		root:  filepath.Clean(root),
		log:   log,
		items: make(map[string]entry),
	}

	if err := os.MkdirAll(filepath.Join(b.root, payloadDir), 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create trash directory")
	}
	if err := b.load(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bin) indexPath() string {
	return filepath.Join(b.root, indexFilename)
}

func (b *Bin) payloadPath(id string) string {
	return filepath.Join(b.root, payloadDir, id)
}

func (b *Bin) load() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	//nolint:gosec // Path is cleaned and owned by the bin
	data, err := os.ReadFile(b.indexPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read trash index")
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &b.items); err != nil {
		return zerr.Wrap(err, "failed to unmarshal trash index")
	}
	return nil
}

func (b *Bin) save() error {
	b.mu.RLock()
	data, err := json.MarshalIndent(b.items, "", "  ")
	b.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal trash index")
	}

	//nolint:gosec // Path is cleaned and owned by the bin
	if err := os.WriteFile(b.indexPath(), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write trash index")
	}
	return nil
}

// Put moves the file or directory at path into the bin.
func (b *Bin) Put(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve path")
	}

	// Trashing the bin into itself would eat the index and every payload.
	if abs == b.root || strings.HasPrefix(abs+string(filepath.Separator), b.root+string(filepath.Separator)) {
		return zerr.With(zerr.New("refusing to trash the trash bin"), "path", abs)
	}

	info, err := os.Lstat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrNotFound
		}
		return zerr.Wrap(err, "failed to stat path")
	}

	e := entry{
		ID:        uuid.NewString(),
		Name:      filepath.Base(abs),
		From:      abs,
		DeletedAt: time.Now(),
		IsDir:     info.IsDir(),
	}

	if info.Mode().IsRegular() {
		sum, err := fingerprint(abs)
		if err != nil {
			return zerr.Wrap(err, "failed to fingerprint file")
		}
		e.Fingerprint = sum
	}

	if err := movePath(abs, b.payloadPath(e.ID), info); err != nil {
		return err
	}

	b.mu.Lock()
	b.items[e.ID] = e
	b.mu.Unlock()

	return b.save()
}

// List returns every item currently held by the bin. Items whose payload has
// gone missing from under the bin are logged and skipped.
func (b *Bin) List() ([]domain.TrashItem, error) {
	b.mu.RLock()
	entries := make([]entry, 0, len(b.items))
	for _, e := range b.items {
		entries = append(entries, e)
	}
	b.mu.RUnlock()

	present := make([]bool, len(entries))
	var g errgroup.Group
	g.SetLimit(listStatLimit)
	for i, e := range entries {
		g.Go(func() error {
			_, err := os.Lstat(b.payloadPath(e.ID))
			present[i] = err == nil
			return nil
		})
	}
	_ = g.Wait() // Goroutines only record presence, they never fail.

	items := make([]domain.TrashItem, 0, len(entries))
	for i, e := range entries {
		if !present[i] {
			b.log.Warn("trash payload missing for " + e.Name + ", skipping")
			continue
		}
		items = append(items, domain.TrashItem{
			ID:           e.ID,
			Name:         e.Name,
			OriginalPath: e.From,
			DeletedAt:    e.DeletedAt,
			IsDir:        e.IsDir,
			Fingerprint:  e.Fingerprint,
		})
	}
	return items, nil
}

// Restore moves the item back to its original path. An occupied destination
// fails with domain.ErrRestoreCollision carrying the conflicting path.
func (b *Bin) Restore(item domain.TrashItem) error {
	b.mu.RLock()
	e, ok := b.items[item.ID]
	b.mu.RUnlock()
	if !ok {
		return domain.ErrNotFound
	}

	if _, err := os.Lstat(e.From); err == nil {
		return zerr.With(domain.ErrRestoreCollision, "path", e.From)
	}

	payload := b.payloadPath(e.ID)
	info, err := os.Lstat(payload)
	if err != nil {
		return zerr.Wrap(err, "trash payload missing")
	}

	if e.Fingerprint != 0 && info.Mode().IsRegular() {
		sum, err := fingerprint(payload)
		if err == nil && sum != e.Fingerprint {
			b.log.Warn(e.Name + ": content changed while in the trash bin")
		}
	}

	if err := os.MkdirAll(filepath.Dir(e.From), 0o750); err != nil {
		return zerr.Wrap(err, "failed to recreate parent directory")
	}
	if err := movePath(payload, e.From, info); err != nil {
		return err
	}

	b.mu.Lock()
	delete(b.items, e.ID)
	b.mu.Unlock()

	return b.save()
}

// Purge permanently removes the given items. A missing payload is not an
// error; purges of separate items are independent, there is no transaction
// across the batch.
func (b *Bin) Purge(items []domain.TrashItem) error {
	for _, item := range items {
		if err := os.RemoveAll(b.payloadPath(item.ID)); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to purge item"), "name", item.Name)
		}

		b.mu.Lock()
		delete(b.items, item.ID)
		b.mu.Unlock()

		if err := b.save(); err != nil {
			return err
		}
	}
	return nil
}

// fingerprint hashes a regular file's content.
func fingerprint(path string) (uint64, error) {
	//nolint:gosec // Path is owned by the bin or already validated
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// movePath renames src to dst, falling back to copy+delete for regular files
// when the rename crosses devices.
func movePath(src, dst string, info os.FileInfo) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !info.Mode().IsRegular() {
		return zerr.Wrap(err, "failed to move path")
	}

	if err := copyFile(src, dst, info.Mode().Perm()); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return zerr.Wrap(err, "failed to remove source after copy")
	}
	return nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	//nolint:gosec // Paths are owned by the bin or already validated
	in, err := os.Open(src)
	if err != nil {
		return zerr.Wrap(err, "failed to open source")
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	//nolint:gosec // Paths are owned by the bin or already validated
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return zerr.Wrap(err, "failed to create destination")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "failed to copy content")
	}
	if err := out.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize destination")
	}
	return nil
}
