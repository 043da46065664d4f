package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/binit/internal/core/ports"
)

// NodeID is the unique identifier for the FileOps adapter Graft node.
const NodeID graft.ID = "adapter.fileops"

func init() {
	graft.Register(graft.Node[ports.FileOps]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileOps, error) {
			return New(), nil
		},
	})
}
