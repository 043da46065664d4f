// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/binit/internal/core/domain"

// TrashBin is the external trash-bin service. Implementations own the backing
// storage; callers only move paths in, select among items and hand them back.
//
//go:generate go run go.uber.org/mock/mockgen -source=trashbin.go -destination=mocks/mock_trashbin.go -package=mocks
type TrashBin interface {
	// Put moves the file or directory at path into the bin.
	Put(path string) error

	// List returns every item currently held by the bin.
	List() ([]domain.TrashItem, error)

	// Restore moves the item back to its original path. When the destination
	// is already occupied it fails with domain.ErrRestoreCollision carrying
	// the conflicting path.
	Restore(item domain.TrashItem) error

	// Purge permanently removes the given items from the bin. Purging an item
	// whose payload is already gone is not an error.
	Purge(items []domain.TrashItem) error
}
