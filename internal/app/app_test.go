package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/binit/internal/app"
	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports/mocks"
	"go.trai.ch/binit/internal/engine/restore"
	"go.trai.ch/binit/internal/engine/traverse"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	files    *mocks.MockFileOps
	trash    *mocks.MockTrashBin
	prompter *mocks.MockPrompter
	sink     *mocks.MockProgressSink
}

func newFixture(t *testing.T, cfg domain.Config) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		files:    mocks.NewMockFileOps(ctrl),
		trash:    mocks.NewMockTrashBin(ctrl),
		prompter: mocks.NewMockPrompter(ctrl),
		sink:     mocks.NewMockProgressSink(ctrl),
	}

	f.sink.EXPECT().BatchStarted(gomock.Any()).AnyTimes()
	f.sink.EXPECT().Entry(gomock.Any(), gomock.Any()).AnyTimes()
	f.sink.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.sink.EXPECT().BatchDone(gomock.Any(), gomock.Any()).AnyTimes()

	engine := traverse.NewEngine(f.files, f.trash, f.prompter, f.sink)
	resolver := restore.NewResolver(f.trash, f.prompter, f.sink)
	f.app = app.New(cfg, engine, resolver, f.trash, f.prompter, f.sink)
	return f
}

func TestApp_Trash(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	f.trash.EXPECT().Put("/tmp/a.txt").Return(nil)
	f.trash.EXPECT().Put("/tmp/b.txt").Return(nil)

	require.NoError(t, f.app.Trash([]string{"/tmp/a.txt", "/tmp/b.txt"}))
}

func TestApp_TrashSkipsMissingPaths(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	f.trash.EXPECT().Put("/tmp/ghost").Return(domain.ErrNotFound)
	f.trash.EXPECT().Put("/tmp/real.txt").Return(nil)

	require.NoError(t, f.app.Trash([]string{"/tmp/ghost", "/tmp/real.txt"}))
}

func TestApp_TrashAbortsOnServiceError(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	f.trash.EXPECT().Put("/tmp/a.txt").Return(errors.New("disk full"))

	err := f.app.Trash([]string{"/tmp/a.txt", "/tmp/never-reached"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestApp_PurgeAll(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	items := []domain.TrashItem{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	f.trash.EXPECT().List().Return(items, nil)
	f.trash.EXPECT().Purge(items).Return(nil)

	require.NoError(t, f.app.Purge(nil, true))
}

func TestApp_PurgeByName(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	items := []domain.TrashItem{
		{ID: "1", Name: "a.txt"},
		{ID: "2", Name: "b.txt"},
	}
	f.trash.EXPECT().List().Return(items, nil)
	f.trash.EXPECT().Purge([]domain.TrashItem{items[1]}).Return(nil)

	require.NoError(t, f.app.Purge([]string{"b.txt"}, false))
}

func TestApp_PurgeDisambiguatesDuplicates(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	items := []domain.TrashItem{
		{ID: "1", Name: "same.txt"},
		{ID: "2", Name: "same.txt"},
	}
	f.trash.EXPECT().List().Return(items, nil)
	f.prompter.EXPECT().Disambiguate("same.txt", items).Return(items[1], nil)
	f.trash.EXPECT().Purge([]domain.TrashItem{items[1]}).Return(nil)

	require.NoError(t, f.app.Purge([]string{"same.txt"}, false))
}

func TestApp_PurgeUnknownNameIsWarning(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	f.trash.EXPECT().List().Return(nil, nil)
	f.trash.EXPECT().Purge(gomock.Nil()).Return(nil)

	require.NoError(t, f.app.Purge([]string{"nothing"}, false))
}

func TestApp_DeleteUsesConfiguredRecursion(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Recursive = true
	f := newFixture(t, cfg)

	dir := filepath.Join(t.TempDir(), "d")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o600))

	// No ConfirmRecursion expectation: the configured default skips the prompt.
	f.files.EXPECT().Remove(filepath.Join(dir, "f.txt")).Return(nil)
	f.files.EXPECT().Remove(dir).Return(nil)

	res, err := f.app.Delete([]string{dir}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.True(t, res.Completed)
}

func TestApp_ShredDefaultsRunsFromConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ShredRuns = 3
	f := newFixture(t, cfg)

	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	f.files.EXPECT().Overwrite(path, 3).Return(nil)
	f.files.EXPECT().Remove(path).Return(nil)

	_, err := f.app.Shred([]string{path}, -1, false)
	require.NoError(t, err)
}

func TestApp_ShredExplicitRunsWin(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ShredRuns = 3
	f := newFixture(t, cfg)

	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	f.files.EXPECT().Overwrite(path, 1).Return(nil)
	f.files.EXPECT().Remove(path).Return(nil)

	_, err := f.app.Shred([]string{path}, 1, false)
	require.NoError(t, err)
}

func TestApp_SearchRejectsUnknownAction(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	_, err := f.app.Search("vaporize", "readme.md", t.TempDir(), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownSearchAction))
}

func TestApp_SearchTrashesConfirmedHit(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	dir := t.TempDir()
	path := filepath.Join(dir, "readme.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	f.prompter.EXPECT().ConfirmSearchHit("readme.d", "readme.md", false).Return(true, false, nil)
	f.trash.EXPECT().Put(path).Return(nil)

	res, err := f.app.Search("trash", "readme.d", dir, true)
	require.NoError(t, err)
	assert.False(t, res.Completed)
}

func TestApp_List(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	items := []domain.TrashItem{{ID: "1", Name: "a"}}
	f.trash.EXPECT().List().Return(items, nil)

	got, err := f.app.List()
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
