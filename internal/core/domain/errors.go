package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when a supplied path or trash item name does not exist.
	ErrNotFound = zerr.New("not found")

	// ErrRestoreCollision is returned when restoring an item would overwrite an
	// existing file at its original path. The conflicting path is attached as
	// zerr metadata under the "path" key.
	ErrRestoreCollision = zerr.New("restore destination already occupied")

	// ErrNoInput is returned when interactive input ends before an answer
	// could be read.
	ErrNoInput = zerr.New("no input")

	// ErrUnknownSearchAction is returned when the search subcommand is invoked
	// with an action other than trash, delete or shred.
	ErrUnknownSearchAction = zerr.New("unknown search action")
)
