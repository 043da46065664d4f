// Package restore implements the trash-bin restore conflict resolver.
package restore

import (
	"errors"

	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver restores trash items by name, resolving duplicate-name and
// destination-occupied collisions. It is an explicit fixed-point iteration
// over a shrinking pending set: every pass either restores at least one item
// or abandons at least one name, so the loop terminates within as many passes
// as there were initial names.
type Resolver struct {
	trash    ports.TrashBin
	prompter ports.Prompter
	sink     ports.ProgressSink
}

// NewResolver creates a new Resolver.
func NewResolver(trash ports.TrashBin, prompter ports.Prompter, sink ports.ProgressSink) *Resolver {
	return &Resolver{
		trash:    trash,
		prompter: prompter,
		sink:     sink,
	}
}

// Restore attempts to restore every named item and returns the number of
// items actually restored. Names with no trashed candidate are warned about
// and dropped, never failing the batch. A destination collision abandons all
// pending occurrences of that name and reports the conflicting path; the
// remaining names are retried on the next pass. Any other trash-service
// error aborts the batch.
func (r *Resolver) Restore(names []string) (int, error) {
	pending := append([]string(nil), names...)
	restored := 0

	r.sink.BatchStarted("restore")

	// Each pass strictly shrinks the pending set. The bound is defensive: a
	// pass that somehow makes no progress ends the loop as done instead of
	// spinning forever.
	maxPasses := len(pending)
	for pass := 0; pass < maxPasses && len(pending) > 0; pass++ {
		next, n, err := r.attempt(pending)
		restored += n
		if err != nil {
			r.sink.BatchDone(restored, false)
			return restored, err
		}
		if len(next) >= len(pending) {
			break
		}
		pending = next
	}

	r.sink.BatchDone(restored, true)
	return restored, nil
}

// attempt runs one pass over the pending names. A collision ends the pass
// early with every occurrence of the colliding name dropped; the names not
// yet reached stay pending for the next pass. It returns the names still
// pending and the number of items restored during this pass.
func (r *Resolver) attempt(pending []string) ([]string, int, error) {
	restored := 0

	for i, name := range pending {
		candidates, err := r.lookup(name)
		if err != nil {
			return nil, restored, err
		}
		if len(candidates) == 0 {
			r.sink.Warn(name + ": no matching item in the trash bin")
			continue
		}

		item := candidates[0]
		if len(candidates) > 1 {
			item, err = r.prompter.Disambiguate(name, candidates)
			if err != nil {
				return nil, restored, err
			}
		}

		r.sink.Entry(item.OriginalPath, item.IsDir)

		switch err := r.trash.Restore(item); {
		case err == nil:
			restored++

		case errors.Is(err, domain.ErrRestoreCollision):
			// Retrying this name would hit the same occupied destination, so
			// every pending occurrence is dropped, not just this one.
			r.sink.Warn(name + ": destination already exists, not restored")
			return withoutName(pending[i+1:], name), restored, nil

		default:
			return nil, restored, zerr.Wrap(err, "failed to restore item")
		}
	}

	return nil, restored, nil
}

// lookup returns every trashed item sharing the given name.
func (r *Resolver) lookup(name string) ([]domain.TrashItem, error) {
	items, err := r.trash.List()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list trash bin")
	}
	return domain.ItemsNamed(items, name), nil
}

// withoutName returns names with every occurrence of name removed.
func withoutName(names []string, name string) []string {
	var out []string
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
