package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/binit/cmd/binit/commands"
	"go.trai.ch/binit/internal/app"
	"go.trai.ch/binit/internal/build"
	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports/mocks"
	"go.trai.ch/binit/internal/engine/restore"
	"go.trai.ch/binit/internal/engine/traverse"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cli      *commands.CLI
	out      *bytes.Buffer
	files    *mocks.MockFileOps
	trash    *mocks.MockTrashBin
	prompter *mocks.MockPrompter
}

func newFixture(t *testing.T, cfg domain.Config) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	files := mocks.NewMockFileOps(ctrl)
	bin := mocks.NewMockTrashBin(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)
	sink := mocks.NewMockProgressSink(ctrl)

	sink.EXPECT().BatchStarted(gomock.Any()).AnyTimes()
	sink.EXPECT().Entry(gomock.Any(), gomock.Any()).AnyTimes()
	sink.EXPECT().Warn(gomock.Any()).AnyTimes()
	sink.EXPECT().BatchDone(gomock.Any(), gomock.Any()).AnyTimes()

	engine := traverse.NewEngine(files, bin, prompter, sink)
	resolver := restore.NewResolver(bin, prompter, sink)
	a := app.New(cfg, engine, resolver, bin, prompter, sink)

	cli := commands.New(a)
	var out bytes.Buffer
	cli.SetOutput(&out)

	return &fixture{
		cli:      cli,
		out:      &out,
		files:    files,
		trash:    bin,
		prompter: prompter,
	}
}

func (f *fixture) run(args ...string) error {
	f.cli.SetArgs(args)
	return f.cli.Execute(context.Background())
}

func TestTrash(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.trash.EXPECT().Put("/tmp/a.txt").Return(nil)

	require.NoError(t, f.run("trash", "/tmp/a.txt"))
}

func TestTrash_RequiresArgs(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	require.Error(t, f.run("trash"))
}

func TestRestore_PrintsCount(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	item := domain.TrashItem{ID: "1", Name: "a.txt", OriginalPath: "/tmp/a.txt"}
	f.trash.EXPECT().List().Return([]domain.TrashItem{item}, nil)
	f.trash.EXPECT().Restore(item).Return(nil)

	require.NoError(t, f.run("restore", "a.txt"))
	assert.Contains(t, f.out.String(), "Restored 1 item(s)")
}

func TestPurge_RequiresNamesOrAll(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	err := f.run("purge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--all")
}

func TestPurge_All(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	items := []domain.TrashItem{{ID: "1", Name: "a"}}
	f.trash.EXPECT().List().Return(items, nil)
	f.trash.EXPECT().Purge(items).Return(nil)

	require.NoError(t, f.run("purge", "--all"))
}

func TestDelete_RecursiveFlag(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	dir := filepath.Join(t.TempDir(), "d")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0o600))

	f.files.EXPECT().Remove(filepath.Join(dir, "f.txt")).Return(nil)
	f.files.EXPECT().Remove(dir).Return(nil)

	require.NoError(t, f.run("delete", "-r", dir))
}

func TestShred_RejectsNegativeRuns(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	err := f.run("shred", "--runs", "-2", "/tmp/x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestShred_DefaultRunsComeFromConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ShredRuns = 2
	f := newFixture(t, cfg)

	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	f.files.EXPECT().Overwrite(path, 2).Return(nil)
	f.files.EXPECT().Remove(path).Return(nil)

	require.NoError(t, f.run("shred", path))
}

func TestShred_ExplicitRuns(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	f.files.EXPECT().Overwrite(path, 4).Return(nil)
	f.files.EXPECT().Remove(path).Return(nil)

	require.NoError(t, f.run("shred", "-n", "4", path))
}

func TestList(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	f.trash.EXPECT().List().Return([]domain.TrashItem{
		{ID: "1", Name: "notes.txt", OriginalPath: "/home/u/notes.txt", DeletedAt: time.Now()},
	}, nil)

	require.NoError(t, f.run("list"))
	assert.Contains(t, f.out.String(), "notes.txt")
}

func TestList_Search(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	f.trash.EXPECT().List().Return([]domain.TrashItem{
		{ID: "1", Name: "report.pdf", DeletedAt: time.Now()},
		{ID: "2", Name: "notes.txt", DeletedAt: time.Now()},
	}, nil)

	require.NoError(t, f.run("list", "--search", "report"))
	assert.Contains(t, f.out.String(), "report.pdf")
	assert.NotContains(t, f.out.String(), "notes.txt")
}

func TestSearch_UnknownAction(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	err := f.run("search", "vaporize", "readme.md", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownSearchAction))
}

func TestVersion(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())

	require.NoError(t, f.run("version"))
	assert.Contains(t, f.out.String(), build.Version)
}

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "long flag", args: []string{"--config", "a.yaml", "list"}, want: "a.yaml"},
		{name: "long flag equals", args: []string{"--config=b.yaml"}, want: "b.yaml"},
		{name: "short flag", args: []string{"-c", "c.yaml"}, want: "c.yaml"},
		{name: "short flag equals", args: []string{"-c=d.yaml"}, want: "d.yaml"},
		{name: "absent", args: []string{"list"}, want: ""},
		{name: "dangling flag", args: []string{"--config"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commands.ConfigPathFromArgs(tt.args))
		})
	}
}
