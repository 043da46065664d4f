package traverse

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine walks directory subtrees post-order and applies an Operation to
// every discovered entry. It is strictly sequential: entries are processed in
// enumeration order, children always before their parent, and the first
// failure aborts the whole multi-root batch.
type Engine struct {
	files    ports.FileOps
	trash    ports.TrashBin
	prompter ports.Prompter
	sink     ports.ProgressSink
}

// NewEngine creates a new Engine.
func NewEngine(files ports.FileOps, trash ports.TrashBin, prompter ports.Prompter, sink ports.ProgressSink) *Engine {
	return &Engine{
		files:    files,
		trash:    trash,
		prompter: prompter,
		sink:     sink,
	}
}

// batchState carries per-batch mutable state. actNext is the handshake
// between a search notification and the act that follows it: notify records
// whether the user confirmed the hit, act consumes the flag.
type batchState struct {
	op      Operation
	actNext bool
}

// RunBatch applies op to every root in order. Non-existent roots are warned
// about and skipped before any destructive work starts. Directory roots
// prompt for recursion unless recurse is set; declining skips that root and
// is not an error. The returned result always carries the count of entries
// processed so far, including when an error aborts the batch; roots after the
// failing one are never attempted and already-processed entries are not
// rolled back.
func (e *Engine) RunBatch(op Operation, roots []string, recurse bool) (domain.TraversalResult, error) {
	st := &batchState{op: op}
	res := domain.TraversalResult{Completed: true}

	e.sink.BatchStarted(op.Kind.String())

	for _, root := range roots {
		info, err := os.Lstat(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e.sink.Warn(root + ": no such file or directory, skipping")
				continue
			}
			e.sink.BatchDone(res.Processed, false)
			return res, wrapPath(zerr.Wrap(err, "failed to stat root"), root)
		}

		if !info.IsDir() {
			res.Processed++
			cont, err := e.visit(st, root, false)
			if err != nil {
				e.sink.BatchDone(res.Processed, false)
				return res, wrapPath(err, root)
			}
			if !cont {
				res.Completed = false
				break
			}
			continue
		}

		if !recurse {
			ok, err := e.prompter.ConfirmRecursion(root)
			if err != nil {
				e.sink.BatchDone(res.Processed, false)
				return res, wrapPath(err, root)
			}
			if !ok {
				e.sink.Warn("skipping directory " + root)
				continue
			}
		}

		sub, err := e.walk(st, root, res.Processed)
		res.Processed = sub.Processed
		if err != nil {
			e.sink.BatchDone(res.Processed, false)
			return res, err
		}
		if !sub.Completed {
			res.Completed = false
			break
		}
	}

	e.sink.BatchDone(res.Processed, res.Completed)
	return res, nil
}

// walk visits dir's subtree post-order: files as encountered, subdirectories
// recursively, and the directory itself only after all of its children. count
// is the running total across the whole batch; the returned result carries
// the updated total even when the walk stops early or fails.
func (e *Engine) walk(st *batchState, dir string, count int) (domain.TraversalResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.TraversalResult{Processed: count}, wrapPath(zerr.Wrap(err, "failed to read directory"), dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			sub, err := e.walk(st, path, count)
			count = sub.Processed
			if err != nil {
				return sub, err
			}
			if !sub.Completed {
				return sub, nil
			}
			continue
		}

		count++
		cont, err := e.visit(st, path, false)
		if err != nil {
			return domain.TraversalResult{Processed: count}, wrapPath(err, path)
		}
		if !cont {
			return domain.TraversalResult{Processed: count}, nil
		}
	}

	// All children are gone (or visited); now the directory itself.
	count++
	cont, err := e.visit(st, dir, true)
	if err != nil {
		return domain.TraversalResult{Processed: count}, wrapPath(err, dir)
	}
	return domain.TraversalResult{Processed: count, Completed: cont}, nil
}

// visit runs the notification hook and then the action for one entry. notify
// always precedes act for the same path. The returned bool is false when the
// operation asks to stop the traversal after this entry.
func (e *Engine) visit(st *batchState, path string, isDir bool) (bool, error) {
	e.sink.Entry(path, isDir)

	cont := true
	if st.op.Kind == KindSearch {
		name := filepath.Base(path)
		if domain.NameMatches(name, st.op.Target) {
			actNow, keepGoing, err := e.prompter.ConfirmSearchHit(st.op.Target, name, isDir)
			if err != nil {
				return false, err
			}
			st.actNext = actNow
			cont = keepGoing
		}
	}

	if err := e.act(st, path, isDir); err != nil {
		return false, err
	}
	return cont, nil
}

// act performs the destructive step for one entry. For shred the overwrite
// runs before removal: if the overwrite fails the entry is left in place.
func (e *Engine) act(st *batchState, path string, isDir bool) error {
	switch st.op.Kind {
	case KindDelete:
		return e.files.Remove(path)

	case KindShred:
		return e.shred(path, isDir, st.op.Runs)

	case KindSearch:
		if !st.actNext {
			return nil
		}
		st.actNext = false
		switch st.op.Under {
		case KindTrash:
			return e.trash.Put(path)
		case KindDelete:
			return e.files.Remove(path)
		case KindShred:
			return e.shred(path, isDir, st.op.Runs)
		default:
			return domain.ErrUnknownSearchAction
		}

	default:
		return nil
	}
}

func (e *Engine) shred(path string, isDir bool, runs int) error {
	if !isDir {
		if err := e.files.Overwrite(path, runs); err != nil {
			return err
		}
	}
	return e.files.Remove(path)
}

// wrapPath attaches the offending path to err once, at the point of failure.
// The error then propagates unmodified.
func wrapPath(err error, path string) error {
	return zerr.With(err, "path", path)
}
