package restore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/binit/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binit/internal/adapters/term"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binit/internal/adapters/trash"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binit/internal/core/ports"
)

// NodeID is the unique identifier for the restore resolver Graft node.
const NodeID graft.ID = "engine.restore"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			trash.NodeID,
			term.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			bin, err := graft.Dep[ports.TrashBin](ctx)
			if err != nil {
				return nil, err
			}

			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}

			sink, err := graft.Dep[ports.ProgressSink](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(bin, prompter, sink), nil
		},
	})
}
