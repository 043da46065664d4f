package traverse

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/binit/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binit/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binit/internal/adapters/term"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binit/internal/adapters/trash"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/binit/internal/core/ports"
)

// NodeID is the unique identifier for the traversal engine Graft node.
const NodeID graft.ID = "engine.traverse"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			trash.NodeID,
			term.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			files, err := graft.Dep[ports.FileOps](ctx)
			if err != nil {
				return nil, err
			}

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

			return NewEngine(files, bin, prompter, sink), nil
		},
	})
}
