package ports

import "go.trai.ch/binit/internal/core/domain"

// Prompter asks the user for decisions the engines cannot make themselves.
// Every method blocks on user input.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// ConfirmRecursion asks whether to recurse into the directory at path.
	ConfirmRecursion(path string) (bool, error)

	// Disambiguate picks one item among several trashed under the same name.
	// candidates is never empty.
	Disambiguate(name string, candidates []domain.TrashItem) (domain.TrashItem, error)

	// ConfirmSearchHit reports a near-match found during a search walk and
	// returns whether to act on it now and whether to keep walking.
	ConfirmSearchHit(target, name string, isDir bool) (actNow, keepGoing bool, err error)
}
