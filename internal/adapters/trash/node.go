package trash

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/binit/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/binit/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
)

// NodeID is the unique identifier for the trash bin Graft node.
const NodeID graft.ID = "adapter.trashbin"

func init() {
	graft.Register(graft.Node[ports.TrashBin]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.TrashBin, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			root := cfg.TrashDir
			if root == "" {
				root, err = DefaultRoot()
				if err != nil {
					return nil, err
				}
			}
			return NewBin(root, log)
		},
	})
}
