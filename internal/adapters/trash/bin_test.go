package trash_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/binit/internal/adapters/trash"
	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestBin(t *testing.T) *trash.Bin {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	bin, err := trash.NewBin(filepath.Join(t.TempDir(), "bin"), log)
	require.NoError(t, err)
	return bin
}

func TestBin_PutListRestore(t *testing.T) {
	bin := newTestBin(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("remember"), 0o600))

	require.NoError(t, bin.Put(path))

	// The original path is gone, the bin holds one item.
	_, err := os.Lstat(path)
	require.Error(t, err)

	items, err := bin.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "notes.txt", items[0].Name)
	assert.Equal(t, path, items[0].OriginalPath)
	assert.False(t, items[0].IsDir)
	assert.NotZero(t, items[0].Fingerprint)

	require.NoError(t, bin.Restore(items[0]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("remember"), data)

	items, err = bin.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBin_PutDirectory(t *testing.T) {
	bin := newTestBin(t)

	dir := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), []byte("package main"), 0o600))

	require.NoError(t, bin.Put(dir))

	items, err := bin.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsDir)
	assert.Zero(t, items[0].Fingerprint)

	require.NoError(t, bin.Restore(items[0]))

	data, err := os.ReadFile(filepath.Join(dir, "src", "main.go"))
	require.NoError(t, err)
	assert.Equal(t, []byte("package main"), data)
}

func TestBin_RestoreCollision(t *testing.T) {
	bin := newTestBin(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "busy.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))
	require.NoError(t, bin.Put(path))

	// Re-occupy the destination.
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))

	items, err := bin.List()
	require.NoError(t, err)
	require.Len(t, items, 1)

	err = bin.Restore(items[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRestoreCollision))

	// The occupant and the trashed payload both survive.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)

	items, err = bin.List()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestBin_DuplicateNamesKeptApart(t *testing.T) {
	bin := newTestBin(t)

	dirA := t.TempDir()
	dirB := t.TempDir()
	pathA := filepath.Join(dirA, "same.txt")
	pathB := filepath.Join(dirB, "same.txt")
	require.NoError(t, os.WriteFile(pathA, []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(pathB, []byte("b"), 0o600))

	require.NoError(t, bin.Put(pathA))
	require.NoError(t, bin.Put(pathB))

	items, err := bin.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Len(t, domain.ItemsNamed(items, "same.txt"), 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestBin_Purge(t *testing.T) {
	bin := newTestBin(t)

	path := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, bin.Put(path))

	items, err := bin.List()
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, bin.Purge(items))

	items, err = bin.List()
	require.NoError(t, err)
	assert.Empty(t, items)

	// Purging the same items again is harmless.
	require.NoError(t, bin.Purge(items))
}

func TestBin_PutMissingPath(t *testing.T) {
	bin := newTestBin(t)
	err := bin.Put(filepath.Join(t.TempDir(), "nothing-here"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBin_RefusesToTrashItself(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := filepath.Join(t.TempDir(), "bin")
	bin, err := trash.NewBin(root, log)
	require.NoError(t, err)

	require.Error(t, bin.Put(root))
	require.Error(t, bin.Put(filepath.Join(root, "files")))
}

func TestBin_IndexSurvivesReopen(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := filepath.Join(t.TempDir(), "bin")
	path := filepath.Join(t.TempDir(), "durable.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	bin, err := trash.NewBin(root, log)
	require.NoError(t, err)
	require.NoError(t, bin.Put(path))

	reopened, err := trash.NewBin(root, log)
	require.NoError(t, err)

	items, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "durable.txt", items[0].Name)
}

func TestBin_RestoreUnknownItem(t *testing.T) {
	bin := newTestBin(t)
	err := bin.Restore(domain.TrashItem{ID: "no-such-id", Name: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
