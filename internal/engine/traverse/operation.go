// Package traverse implements the recursive file-tree operation engine.
package traverse

// Kind identifies one of the closed set of entry operations. The set is
// fixed, so dispatch is a switch rather than an open interface.
type Kind int

const (
	// KindDelete permanently removes each visited entry.
	KindDelete Kind = iota
	// KindShred overwrites each visited file with zeros before removing it.
	KindShred
	// KindSearch walks the tree looking for entries whose name nearly matches
	// a target, applying an underlying action to confirmed hits.
	KindSearch
	// KindTrash moves an entry to the trash bin. It is only valid as the
	// underlying action of a search; trashing a tree hands the whole root to
	// the bin without walking it.
	KindTrash
)

// String returns the subcommand-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDelete:
		return "delete"
	case KindShred:
		return "shred"
	case KindSearch:
		return "search"
	case KindTrash:
		return "trash"
	default:
		return "unknown"
	}
}

// Operation is the tagged variant executed once per discovered entry.
type Operation struct {
	// Kind selects the variant.
	Kind Kind
	// Runs is the number of overwrite passes for shred. Zero is an accepted
	// no-op: the overwrite loop simply never executes.
	Runs int
	// Target is the name searched for by a search operation.
	Target string
	// Under is the action a search applies to confirmed hits.
	Under Kind
}

// Delete returns the permanent-removal operation.
func Delete() Operation {
	return Operation{Kind: KindDelete}
}

// Shred returns the overwrite-then-remove operation with the given number of
// overwrite passes.
func Shred(runs int) Operation {
	return Operation{Kind: KindShred, Runs: runs}
}

// Search returns the search operation looking for target and applying under
// to confirmed hits. A shred action uses a single overwrite pass.
func Search(target string, under Kind) Operation {
	return Operation{Kind: KindSearch, Target: target, Under: under, Runs: 1}
}
