// Package app implements the application layer for binit.
package app

import (
	"errors"

	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
	"go.trai.ch/binit/internal/engine/restore"
	"go.trai.ch/binit/internal/engine/traverse"
	"go.trai.ch/zerr"
)

// App glues the engines and the trash bin together behind the operations the
// CLI exposes.
type App struct {
	cfg      domain.Config
	engine   *traverse.Engine
	resolver *restore.Resolver
	trash    ports.TrashBin
	prompter ports.Prompter
	sink     ports.ProgressSink
}

// New creates a new App instance.
func New(
	cfg domain.Config,
	engine *traverse.Engine,
	resolver *restore.Resolver,
	trash ports.TrashBin,
	prompter ports.Prompter,
	sink ports.ProgressSink,
) *App {
	return &App{
		cfg:      cfg,
		engine:   engine,
		resolver: resolver,
		trash:    trash,
		prompter: prompter,
		sink:     sink,
	}
}

// Trash moves each path into the trash bin. Non-existent paths are warned
// about and skipped; the first trash-service error aborts the batch.
func (a *App) Trash(paths []string) error {
	a.sink.BatchStarted("trash")

	moved := 0
	for _, path := range paths {
		switch err := a.trash.Put(path); {
		case err == nil:
			a.sink.Entry(path, false)
			moved++

		case errors.Is(err, domain.ErrNotFound):
			a.sink.Warn(path + ": no such file or directory, skipping")

		default:
			a.sink.BatchDone(moved, false)
			return zerr.With(zerr.Wrap(err, "failed to trash path"), "path", path)
		}
	}

	a.sink.BatchDone(moved, true)
	return nil
}

// Restore brings named items back from the trash bin. It returns the number
// of items actually restored.
func (a *App) Restore(names []string) (int, error) {
	return a.resolver.Restore(names)
}

// Purge permanently removes named items from the trash bin, or everything
// when all is set. Names with several trashed candidates go through the same
// disambiguation as restore; unknown names warn and are skipped.
func (a *App) Purge(names []string, all bool) error {
	a.sink.BatchStarted("purge")

	items, err := a.trash.List()
	if err != nil {
		a.sink.BatchDone(0, false)
		return zerr.Wrap(err, "failed to list trash bin")
	}

	var doomed []domain.TrashItem
	if all {
		doomed = items
	} else {
		for _, name := range names {
			candidates := domain.ItemsNamed(items, name)
			if len(candidates) == 0 {
				a.sink.Warn(name + ": no matching item in the trash bin")
				continue
			}

			item := candidates[0]
			if len(candidates) > 1 {
				item, err = a.prompter.Disambiguate(name, candidates)
				if err != nil {
					a.sink.BatchDone(0, false)
					return err
				}
			}
			doomed = append(doomed, item)
		}
	}

	for _, item := range doomed {
		a.sink.Entry(item.OriginalPath, item.IsDir)
	}

	if err := a.trash.Purge(doomed); err != nil {
		a.sink.BatchDone(0, false)
		return zerr.Wrap(err, "failed to purge items")
	}

	a.sink.BatchDone(len(doomed), true)
	return nil
}

// List returns the current trash bin contents.
func (a *App) List() ([]domain.TrashItem, error) {
	return a.trash.List()
}

// Delete permanently removes each path, walking directory trees bottom-up.
func (a *App) Delete(paths []string, recurse bool) (domain.TraversalResult, error) {
	return a.engine.RunBatch(traverse.Delete(), paths, a.effectiveRecurse(recurse))
}

// Shred overwrites regular file content with zeros for the given number of
// runs and then removes each path. runs < 0 falls back to the configured
// default.
func (a *App) Shred(paths []string, runs int, recurse bool) (domain.TraversalResult, error) {
	if runs < 0 {
		runs = a.cfg.ShredRuns
	}
	return a.engine.RunBatch(traverse.Shred(runs), paths, a.effectiveRecurse(recurse))
}

// Search walks dir looking for entries whose name is within edit distance one
// of target, prompting on each near-match, and applies the named action to
// confirmed hits. action is one of "trash", "delete" or "shred".
func (a *App) Search(action, target, dir string, recurse bool) (domain.TraversalResult, error) {
	under, err := searchAction(action)
	if err != nil {
		return domain.TraversalResult{}, err
	}
	return a.engine.RunBatch(traverse.Search(target, under), []string{dir}, a.effectiveRecurse(recurse))
}

// effectiveRecurse merges the per-invocation flag with the configured default.
func (a *App) effectiveRecurse(recurse bool) bool {
	return recurse || a.cfg.Recursive
}

func searchAction(action string) (traverse.Kind, error) {
	switch action {
	case "trash":
		return traverse.KindTrash, nil
	case "delete":
		return traverse.KindDelete, nil
	case "shred":
		return traverse.KindShred, nil
	default:
		return 0, zerr.With(domain.ErrUnknownSearchAction, "action", action)
	}
}
