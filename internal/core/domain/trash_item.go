// Package domain contains the pure value types shared across binit.
package domain

import "time"

// TrashItem describes one entry held by the trash bin. The bin owns the
// backing storage; the rest of the system only ever selects among items and
// hands them back to the bin for restore or purge.
type TrashItem struct {
	// ID is the opaque identifier assigned by the bin when the item was trashed.
	ID string
	// Name is the base name the item had at its original location.
	Name string
	// OriginalPath is the absolute path the item was trashed from.
	OriginalPath string
	// DeletedAt is the time the item entered the bin.
	DeletedAt time.Time
	// IsDir reports whether the item is a directory tree.
	IsDir bool
	// Fingerprint is the xxhash of the file content recorded at trash time.
	// Zero for directories and empty files.
	Fingerprint uint64
}

// ItemNames returns the names of the given items, preserving order.
func ItemNames(items []TrashItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

// ItemsNamed returns the subset of items whose name equals name, preserving order.
func ItemsNamed(items []TrashItem, name string) []TrashItem {
	var matched []TrashItem
	for _, item := range items {
		if item.Name == name {
			matched = append(matched, item)
		}
	}
	return matched
}
